package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; the server has no render layers.
const Default ecs.LayerID = 0
