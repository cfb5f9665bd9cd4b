package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SceneSpec struct {
	Name       string         `yaml:"name"`
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	Gravity    float64        `yaml:"gravity"`
	Background *YAMLColor     `yaml:"background"`
	Platforms  []PlatformSpec `yaml:"platforms"`
	Spawner    SpawnerSpec    `yaml:"spawner"`
	Bullets    BulletPoolSpec `yaml:"bullets"`
	HUD        HUDSpec        `yaml:"hud"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type SpawnerSpec struct {
	IntervalMS int     `yaml:"interval_ms"`
	X          float64 `yaml:"x"`
	MinY       int     `yaml:"min_y"`
	MaxY       int     `yaml:"max_y"`
}

func (s SpawnerSpec) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

type BulletPoolSpec struct {
	PoolSize int `yaml:"pool_size"`
}

type HUDSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize float64 `yaml:"font_size"`
}

type PlayerSpec struct {
	Name           string          `yaml:"name"`
	MoveSpeed      float64         `yaml:"move_speed"`
	JumpSpeed      float64         `yaml:"jump_speed"`
	FireCooldownMS int             `yaml:"fire_cooldown_ms"`
	MuzzleOffsetX  float64         `yaml:"muzzle_offset_x"`
	MuzzleOffsetY  float64         `yaml:"muzzle_offset_y"`
	Health         int             `yaml:"health"`
	Transform      TransformSpec   `yaml:"transform"`
	Collider       ColliderSpec    `yaml:"collider"`
	Sprite         SpriteSpec      `yaml:"sprite"`
	RenderLayer    RenderLayerSpec `yaml:"render_layer"`
	Audio          []AudioSpec     `yaml:"audio"`
}

func (s PlayerSpec) FireCooldown() time.Duration {
	return time.Duration(s.FireCooldownMS) * time.Millisecond
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name        string          `yaml:"name"`
	MoveSpeed   float64         `yaml:"move_speed"`
	Script      string          `yaml:"script"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BulletSpec struct {
	Name        string          `yaml:"name"`
	Speed       float64         `yaml:"speed"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadBulletSpec() (*BulletSpec, error) {
	spec, err := LoadSpec[BulletSpec]("bullet.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

// SpriteSpec describes a generated placeholder sprite; the image is a
// filled rectangle of the collider size unless Width/Height are given.
type SpriteSpec struct {
	Color  *YAMLColor `yaml:"color"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when none was configured.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
