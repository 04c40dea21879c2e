package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioPlayer 按资源ID播放音乐和音效。
// 播放失败不作为错误返回：缺失的音频只记录日志，
// 并返回 false。
type AudioPlayer interface {
	// PlayMusic 开始播放循环音乐，替换当前曲目
	PlayMusic(musicID string, volume float64) bool
	// StopMusic 停止当前音乐(如果有)
	StopMusic()
	// PlaySound 从头播放一次性音效
	PlaySound(soundID string, volume float64) bool
}

// AudioManager 基于 ResourceManager 中播放器实现的 AudioPlayer。
// 同一时间只播放一首音乐。
type AudioManager struct {
	resourceManager *ResourceManager
	currentMusic    *audio.Player
	currentMusicID  string
}

// NewAudioManager 创建从 rm 读取播放器的 AudioManager
func NewAudioManager(rm *ResourceManager) *AudioManager {
	return &AudioManager{resourceManager: rm}
}

// PlayMusic 实现 AudioPlayer
func (am *AudioManager) PlayMusic(musicID string, volume float64) bool {
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}
	am.StopMusic()

	player := am.resourceManager.GetAudioPlayerByID(musicID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Music not loaded: %s", musicID)
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 实现 AudioPlayer
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		log.Printf("[AudioManager] Stopped music: %s", am.currentMusicID)
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// PlaySound 实现 AudioPlayer
func (am *AudioManager) PlaySound(soundID string, volume float64) bool {
	player := am.resourceManager.GetAudioPlayerByID(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not loaded: %s", soundID)
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}
