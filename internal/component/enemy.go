// internal/component/enemy.go
package component

import (
	"math"

	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/utils"
)

// EnemyKind различает обычного врага и босса.
type EnemyKind int

const (
	KindGrunt EnemyKind = iota
	KindBoss
)

// Enemy представляет вражескую сущность. Агро не хранит историю:
// флаг пересчитывается каждый тик по текущей дистанции до игрока.
type Enemy struct {
	Entity
	Kind          EnemyKind
	SpeedX        float64
	SpeedY        float64
	ShootCooldown float64
	Aggro         bool
	MoveTimer     float64
}

// NewEnemy создаёт обычного врага и сразу задаёт ему случайное
// направление блуждания.
func NewEnemy(x, y float64, rng *utils.PRNGService) Enemy {
	e := Enemy{
		Entity: NewEntity(x, y, config.EnemyRadius, config.EnemyHealth, config.EnemyColor),
		Kind:   KindGrunt,
	}
	e.ChangeDirection(rng)
	return e
}

// NewBoss создаёт босса: тот же враг, но крупнее, живучее и с
// дополнительным плетущимся движением поверх базового поведения.
func NewBoss(x, y float64, rng *utils.PRNGService) Enemy {
	e := NewEnemy(x, y, rng)
	e.Kind = KindBoss
	e.Radius = config.BossRadius
	e.Health = config.BossHealth
	e.MaxHealth = config.BossHealth
	e.Color = config.BossColor
	return e
}

// ChangeDirection выбирает новый случайный курс блуждания.
// Взгляд выводится из доминирующей оси скорости.
func (e *Enemy) ChangeDirection(rng *utils.PRNGService) {
	angle := rng.Angle()
	e.SpeedX = math.Cos(angle) * config.EnemySpeed
	e.SpeedY = math.Sin(angle) * config.EnemySpeed
	e.faceDominantAxis(e.SpeedX, e.SpeedY)
}

// Update обновляет агро, курс, позицию и кулдаун врага.
// Для босса после шага каждый тик подмешивается синусоида от
// игрового времени в пропорции 50/50, так что шаг тика всегда
// идёт на скорости, смешанной в прошлом тике.
func (e *Enemy) Update(deltaTime float64, player *Player, rng *utils.PRNGService, gameTime float64) {
	dx := player.X - e.X
	dy := player.Y - e.Y
	distToPlayer := math.Sqrt(dx*dx + dy*dy)

	e.Aggro = distToPlayer <= config.AggroRadius

	if !e.Aggro {
		e.MoveTimer += deltaTime
		if e.MoveTimer >= config.WanderChangeInterval {
			e.ChangeDirection(rng)
			e.MoveTimer = 0
		}
	} else {
		// В агро скорость остаётся прежней, меняется только взгляд.
		e.faceDominantAxis(dx, dy)
	}

	e.X += e.SpeedX * deltaTime
	e.Y += e.SpeedY * deltaTime

	// Примесь вступает в движение только со следующего тика:
	// текущий шаг уже сделан на прежней скорости.
	if e.Kind == KindBoss {
		e.SpeedX = math.Cos(gameTime*config.BossWeaveFreqX)*config.EnemySpeed*0.5 + e.SpeedX*0.5
		e.SpeedY = math.Sin(gameTime*config.BossWeaveFreqY)*config.EnemySpeed*0.5 + e.SpeedY*0.5
	}

	if e.ShootCooldown > 0 {
		e.ShootCooldown -= deltaTime
	}
}

// CanShoot требует и снятого кулдауна, и агро.
func (e *Enemy) CanShoot() bool {
	return e.ShootCooldown <= 0 && e.Aggro
}

// ResetShootCooldown взводит кулдаун после выстрела.
func (e *Enemy) ResetShootCooldown() {
	e.ShootCooldown = config.EnemyShootCooldown
}

func (e *Enemy) faceDominantAxis(dx, dy float64) {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			e.Facing = DirRight
		} else {
			e.Facing = DirLeft
		}
	} else {
		if dy > 0 {
			e.Facing = DirDown
		} else {
			e.Facing = DirUp
		}
	}
}
