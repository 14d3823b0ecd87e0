package factory

import (
	"fmt"

	"github.com/automoto/wavebreak/archetypes"
	"github.com/automoto/wavebreak/components"
	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of the named type at pos, facing the given angle.
func CreateEnemy(ecs *ecs.ECS, typeName string, pos dmath.Vec2, facing float64) (*donburi.Entry, error) {
	enemyType, ok := cfg.Enemy.Types[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", typeName)
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	components.Kind.SetValue(enemy, tags.CategoryEnemy)
	components.Transform.SetValue(enemy, components.TransformData{Position: pos})
	attachObject(ecs, enemy, pos, enemyType.CollisionRadius*2, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:       typeName,
		TypeConfig:     &enemyType, // Cache the config reference
		Variant:        enemyType.Variant,
		BossStyle:      enemyType.BossStyle,
		MoveSpeed:      enemyType.MoveSpeed,
		AttackRange:    enemyType.AttackRange,
		AttackCooldown: enemyType.AttackCooldown,
		AttackDamage:   enemyType.AttackDamage,
		RewardValue:    enemyType.RewardValue,
		Facing:         facing,
	})

	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Status.SetValue(enemy, components.StatusData{})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(enemy, components.FlashData{})

	return enemy, nil
}
