package config

import "github.com/yohamta/donburi/ecs"

// ECS layers
const (
	LayerDefault ecs.LayerID = iota
)
