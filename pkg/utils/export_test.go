package utils

func aabbFromCenter(center, halfExtents Vec3) AABB {
	return AABB{Min: center.Sub(halfExtents), Max: center.Add(halfExtents)}
}

func (b AABB) size() Vec3 {
	return b.Max.Sub(b.Min)
}
