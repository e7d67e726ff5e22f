// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"go-beastfight/internal/ability"
	"go-beastfight/internal/assets"
	"go-beastfight/internal/clock"
	"go-beastfight/internal/component"
	"go-beastfight/internal/config"
	"go-beastfight/internal/defs"
	"go-beastfight/internal/entity"
	"go-beastfight/internal/event"
	"go-beastfight/internal/schedule"
	"go-beastfight/internal/system"
	"go-beastfight/internal/utils"
	"go-beastfight/pkg/grid"
)

// Phase — фаза матча.
type Phase string

const (
	PhaseWarmUp Phase = "warm-up" // только отрисовка
	PhaseActive Phase = "active"  // ходы каждые StepInterval
)

// Options — всё, что нужно для сборки матча. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Settings config.Settings
	Catalog  *defs.Catalog
	Clock    clock.Clock   // по умолчанию системные часы
	Images   assets.Loader // nil — без картинок
	Geometry grid.Geometry // по умолчанию под config.ScreenWidth x config.ScreenHeight
	Rng      *utils.PRNGService
	Registry *ability.Registry
	Logger   *log.Logger
}

// Game holds the match state and drives the simulation.
type Game struct {
	World            *entity.World
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StatsSystem      *system.StatsSystem
	EventDispatcher  *event.Dispatcher
	Scheduler        *schedule.Queue
	Rng              *utils.PRNGService
	Settings         config.Settings

	catalog  *defs.Catalog
	registry *ability.Registry
	images   assets.Loader
	clock    *clock.Pausable
	env      *component.Env
	deps     ability.Deps
	geometry grid.Geometry
	logger   *log.Logger

	background assets.Image

	start       time.Time
	lastStep    time.Time
	phase       Phase
	steps       int
	lastPublish time.Time
	snapshot    atomic.Pointer[Snapshot]
}

// NewGame собирает матч по настройкам и расставляет юнитов.
func NewGame(opts Options) (*Game, error) {
	s := opts.Settings
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(s.Seed)
	}
	if opts.Registry == nil {
		opts.Registry = ability.NewRegistry()
	}
	if err := opts.Catalog.CheckAbilities(opts.Registry.Has); err != nil {
		return nil, err
	}
	if opts.Geometry.CellSize == 0 {
		opts.Geometry = grid.NewGeometry(config.ScreenWidth, config.ScreenHeight, s.GridWidth, s.GridHeight)
	}

	gameClock := clock.NewPausable(opts.Clock)
	dispatcher := event.NewDispatcher()
	scheduler := schedule.NewQueue(gameClock, opts.Logger)
	world := entity.NewWorld(grid.New(s.GridWidth, s.GridHeight))

	g := &Game{
		World:           world,
		EventDispatcher: dispatcher,
		Scheduler:       scheduler,
		Rng:             opts.Rng,
		Settings:        s,
		catalog:         opts.Catalog,
		registry:        opts.Registry,
		images:          opts.Images,
		clock:           gameClock,
		geometry:        opts.Geometry,
		logger:          opts.Logger,
		phase:           PhaseWarmUp,
	}
	g.env = &component.Env{
		Clock:        gameClock,
		Crit:         opts.Rng,
		Geometry:     opts.Geometry,
		MeleeSprite:  g.image(config.MeleeProjectileAsset),
		RangedSprite: g.image(config.RangedProjectileAsset),
		Events:       dispatcher,
		Logger:       opts.Logger,
	}
	g.deps = ability.Deps{
		Clock:  gameClock,
		Queue:  scheduler,
		Events: dispatcher,
		Images: opts.Images,
		Logger: opts.Logger,
	}
	g.background = g.image(config.BackgroundAsset)

	g.MovementSystem = system.NewMovementSystem(world, s.FreeForAll, s.TieBreak, opts.Logger)
	g.CombatSystem = system.NewCombatSystem(world, g.env, s.FreeForAll)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.StatsSystem = system.NewStatsSystem(dispatcher)

	g.start = gameClock.Now()
	if err := g.populate(); err != nil {
		return nil, err
	}
	g.logger.Printf("Match %s started with %d units on a %dx%d board.", s.Mode, world.UnitCount(), s.GridWidth, s.GridHeight)
	g.publish(g.start, true)
	return g, nil
}

// image загружает картинку. Ошибка уже залогирована загрузчиком, бой идёт без неё.
func (g *Game) image(path string) assets.Image {
	if g.images == nil || path == "" {
		return nil
	}
	img, err := g.images.Load(path)
	if err != nil {
		return nil
	}
	return img
}

// Update продвигает матч на один кадр.
func (g *Game) Update() {
	if g.clock.IsPaused() {
		return
	}
	now := g.clock.Now()

	switch g.phase {
	case PhaseWarmUp:
		if now.Sub(g.start) >= g.Settings.WarmUp {
			g.phase = PhaseActive
			g.logger.Println("Warm-up is over, the fight begins!")
			g.EventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: PhaseActive})
			g.step(now)
		}
	case PhaseActive:
		if now.Sub(g.lastStep) >= g.Settings.StepInterval {
			g.step(now)
		}
	}

	g.Scheduler.RunDue(now)
	system.Reap(g.World, g.EventDispatcher, g.logger)
	g.ProjectileSystem.Update(g.geometry)
	g.publish(now, false)
}

// step — один ход: сначала движение всех юнитов, затем бой.
func (g *Game) step(now time.Time) {
	g.lastStep = now
	g.steps++
	g.MovementSystem.Update()
	g.CombatSystem.Update()
}

// Phase возвращает текущую фазу.
func (g *Game) Phase() Phase { return g.phase }

// Steps — сколько ходов сделано.
func (g *Game) Steps() int { return g.steps }

// Elapsed — игровое время с начала матча без учёта пауз.
func (g *Game) Elapsed() time.Duration { return g.clock.Now().Sub(g.start) }

// Geometry возвращает раскладку поля на экране.
func (g *Game) Geometry() grid.Geometry { return g.geometry }

// Background — фоновая картинка, nil если не загрузилась.
func (g *Game) Background() assets.Image { return g.background }

// Alive — сколько живых юнитов у команды. Победителя ядро не объявляет.
func (g *Game) Alive(team int) int { return g.World.AliveCount(team) }

// Now — текущее игровое время.
func (g *Game) Now() time.Time { return g.clock.Now() }

// Pause останавливает игровое время: ни ходов, ни тиков эффектов, ни снарядов.
func (g *Game) Pause() {
	g.clock.Pause()
	g.publish(g.clock.Now(), true)
}

// Resume продолжает матч с того же момента.
func (g *Game) Resume() {
	g.clock.Resume()
	g.publish(g.clock.Now(), true)
}

// TogglePause переключает паузу.
func (g *Game) TogglePause() {
	if g.clock.IsPaused() {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Paused сообщает, стоит ли матч на паузе.
func (g *Game) Paused() bool { return g.clock.IsPaused() }
