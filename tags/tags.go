package tags

import "github.com/yohamta/donburi"

var (
	Platform    = donburi.NewTag().SetName("Platform")
	Start       = donburi.NewTag().SetName("Start")
	Finish      = donburi.NewTag().SetName("Finish")
	Obstacle    = donburi.NewTag().SetName("Obstacle")
	WallRun     = donburi.NewTag().SetName("WallRun")
	Mantle      = donburi.NewTag().SetName("Mantle")
	Vault       = donburi.NewTag().SetName("Vault")
	Building    = donburi.NewTag().SetName("Building")
	Generated   = donburi.NewTag().SetName("Generated")
	StaticBlock = donburi.NewTag().SetName("StaticBlock")
)

// Resolv tags for collision queries
const (
	ResolvPlatform = "platform"
	ResolvSolid    = "solid"
	ResolvObstacle = "obstacle"
)
