package factory

import (
	"github.com/automoto/doomerang-horde/archetypes"
	"github.com/automoto/doomerang-horde/components"
	"github.com/automoto/doomerang-horde/shared/leveldata"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds one solid tile. Walls block both bodies and the nav grid.
func CreateWall(ecs *ecs.ECS, r leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs.World, wall, obj)

	return wall
}
