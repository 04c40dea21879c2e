package game

func (sm *SceneManager) reloadCount() int {
	return sm.reloads
}

func (am *AudioManager) currentMusic() string {
	return am.currentMusicID
}
