package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/utils"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *utils.PRNGService {
	return utils.NewPRNGService(12345)
}

func farPlayer() *Player {
	return NewPlayer(10000, 10000)
}

func TestNewEnemyStartsWandering(t *testing.T) {
	e := NewEnemy(0, 0, testRNG())

	speed := math.Hypot(e.SpeedX, e.SpeedY)
	assert.InDelta(t, config.EnemySpeed, speed, 1e-9)
	assert.Equal(t, KindGrunt, e.Kind)
	assert.Equal(t, config.EnemyHealth, e.Health)
}

func TestNewBossStats(t *testing.T) {
	b := NewBoss(0, 0, testRNG())

	assert.Equal(t, KindBoss, b.Kind)
	assert.Equal(t, config.BossHealth, b.Health)
	assert.Equal(t, config.BossHealth, b.MaxHealth)
	assert.Equal(t, config.BossRadius, b.Radius)
}

func TestAggroWithinRadius(t *testing.T) {
	e := NewEnemy(0, 0, testRNG())
	player := NewPlayer(100, 0)

	e.Update(0.01, player, testRNG(), 0)

	assert.True(t, e.Aggro)
}

func TestAggroAtExactRadius(t *testing.T) {
	// Граница включительно: ровно 150 единиц это ещё агро.
	e := NewEnemy(0, 0, testRNG())
	player := NewPlayer(config.AggroRadius, 0)

	e.Update(0.01, player, testRNG(), 0)

	assert.True(t, e.Aggro)
}

func TestAggroDropsInstantly(t *testing.T) {
	// Агро без гистерезиса: пересчёт каждый тик.
	e := NewEnemy(0, 0, testRNG())
	near := NewPlayer(50, 0)
	e.Update(0.01, near, testRNG(), 0)
	assert.True(t, e.Aggro)

	e.X = 0
	e.Y = 0
	e.Update(0.01, farPlayer(), testRNG(), 0)
	assert.False(t, e.Aggro)
}

func TestWanderChangesDirectionOnTimer(t *testing.T) {
	rng := testRNG()
	e := NewEnemy(0, 0, rng)
	oldVX, oldVY := e.SpeedX, e.SpeedY

	// До истечения интервала курс не меняется.
	e.Update(1.0, farPlayer(), rng, 0)
	assert.Equal(t, oldVX, e.SpeedX)
	assert.Equal(t, oldVY, e.SpeedY)

	// На втором тике таймер достигает интервала и курс перевыбирается.
	e.Update(1.0, farPlayer(), rng, 0)
	changed := e.SpeedX != oldVX || e.SpeedY != oldVY
	assert.True(t, changed)
	assert.Equal(t, 0.0, e.MoveTimer)
}

func TestAggroFacingDominantAxis(t *testing.T) {
	e := NewEnemy(0, 0, testRNG())

	player := NewPlayer(-100, 10)
	e.Update(0.001, player, testRNG(), 0)
	assert.Equal(t, DirLeft, e.Facing)

	e.X, e.Y = 0, 0
	player = NewPlayer(10, 100)
	e.Update(0.001, player, testRNG(), 0)
	assert.Equal(t, DirDown, e.Facing)
}

func TestEnemyCanShootRequiresAggro(t *testing.T) {
	e := NewEnemy(0, 0, testRNG())
	assert.False(t, e.CanShoot(), "no aggro, no shot")

	e.Aggro = true
	assert.True(t, e.CanShoot())

	e.ResetShootCooldown()
	assert.False(t, e.CanShoot())

	e.Update(config.EnemyShootCooldown, NewPlayer(50, 0), testRNG(), 0)
	assert.True(t, e.CanShoot())
}

func TestEnemyIntegratesPositionEveryTick(t *testing.T) {
	e := NewEnemy(0, 0, testRNG())
	e.SpeedX = 80
	e.SpeedY = 0

	e.Update(0.5, farPlayer(), testRNG(), 0)

	assert.Equal(t, 40.0, e.X)
}

func TestBossWeaveBlendsVelocity(t *testing.T) {
	b := NewBoss(0, 0, testRNG())
	oldVX, oldVY := b.SpeedX, b.SpeedY
	gameTime := 1.0

	b.Update(0.01, farPlayer(), testRNG(), gameTime)

	wantVX := math.Cos(gameTime*config.BossWeaveFreqX)*config.EnemySpeed*0.5 + oldVX*0.5
	wantVY := math.Sin(gameTime*config.BossWeaveFreqY)*config.EnemySpeed*0.5 + oldVY*0.5
	assert.InDelta(t, wantVX, b.SpeedX, 1e-9)
	assert.InDelta(t, wantVY, b.SpeedY, 1e-9)
}

func TestBossWeaveBlendFollowsStep(t *testing.T) {
	// Шаг тика делается на прежней скорости, примесь вступает
	// в движение только со следующего тика.
	b := NewBoss(0, 0, testRNG())
	oldVX, oldVY := b.SpeedX, b.SpeedY

	b.Update(0.5, farPlayer(), testRNG(), 1.0)

	assert.InDelta(t, oldVX*0.5, b.X, 1e-9)
	assert.InDelta(t, oldVY*0.5, b.Y, 1e-9)
	assert.NotEqual(t, oldVX, b.SpeedX, "blend lands after the step")
}

func TestBossWeaveAppliesDuringAggro(t *testing.T) {
	// Плетение не выключается в агро: примесь идёт каждый тик.
	b := NewBoss(0, 0, testRNG())
	oldVX := b.SpeedX
	player := NewPlayer(50, 0)

	b.Update(0.01, player, testRNG(), 2.0)

	assert.True(t, b.Aggro)
	wantVX := math.Cos(2.0*config.BossWeaveFreqX)*config.EnemySpeed*0.5 + oldVX*0.5
	assert.InDelta(t, wantVX, b.SpeedX, 1e-9)
}
