package engine

import (
	"github.com/spaghettifunk/lantern/engine/assets"
	"github.com/spaghettifunk/lantern/engine/config"
	"github.com/spaghettifunk/lantern/engine/core"
	"github.com/spaghettifunk/lantern/engine/platform"
	"github.com/spaghettifunk/lantern/engine/renderer/components"
	"github.com/spaghettifunk/lantern/engine/renderer/opengl"
	"github.com/spaghettifunk/lantern/engine/scene"
	"github.com/spaghettifunk/lantern/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	config        *config.Application
	platform      *platform.Platform
	assetManager  *assets.AssetManager
	backend       *opengl.Backend
	shader        *opengl.Shader
	systemManager *systems.SystemManager
	scene         *scene.SceneManager
	camera        *components.Camera
	clock         *core.Clock
}

func New(cfg *config.Application) (*Engine, error) {
	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		config:       cfg,
		platform:     platform.New(),
		assetManager: am,
		backend:      opengl.New(),
		camera:       components.NewCamera(),
		clock:        core.NewClock(),
	}, nil
}

// Initialize brings up the window, the GL state and every system,
// then runs the one-time scene preparation.
func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	core.SetLogLevel(e.config.Level())

	if err := e.platform.Startup(e.config.Name, e.config.StartPosX, e.config.StartPosY, e.config.StartWidth, e.config.StartHeight); err != nil {
		return err
	}

	if err := e.backend.Initialize(); err != nil {
		return err
	}

	shader, err := opengl.NewShader()
	if err != nil {
		return err
	}
	e.shader = shader
	e.shader.Use()

	if err := e.assetManager.Initialize(e.config.AssetDir); err != nil {
		return err
	}

	sm, err := systems.NewSystemManager(e.shader, e.backend, e.assetManager)
	if err != nil {
		return err
	}
	e.systemManager = sm
	e.scene = scene.NewSceneManager(sm, e.backend)

	if err := e.scene.PrepareScene(); err != nil {
		return err
	}

	e.setupCamera()

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// setupCamera writes the fixed view and projection for the tableau's
// vantage point. The spotlight is anchored to the camera.
func (e *Engine) setupCamera() {
	width, height := e.platform.FramebufferSize()
	aspect := float32(width) / float32(height)

	e.shader.SetMat4("view", e.camera.View())
	e.shader.SetMat4("projection", e.camera.Projection(aspect))
	e.shader.SetVec3("viewPosition", e.camera.Position)

	e.shader.SetVec3("spotlight.position", e.camera.Position)
	e.shader.SetVec3("spotlight.direction", e.camera.Forward())
}

// Run drives the per-frame loop until the window is closed, then
// shuts everything down.
func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	lastTime := 0.0

	for !e.platform.ShouldClose() {
		e.clock.Update()
		now := e.clock.Elapsed()
		core.MetricsUpdate(now - lastTime)
		lastTime = now

		e.backend.BeginFrame()
		e.scene.RenderScene()
		e.platform.PumpMessages()
	}

	core.LogInfo("exiting at %.0f fps (%.2f ms/frame avg)", core.MetricsFPS(), core.MetricsFrameTime())

	return e.Shutdown()
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	if e.systemManager != nil {
		if err := e.systemManager.Shutdown(); err != nil {
			core.LogError("system shutdown: %v", err)
		}
	}
	if e.shader != nil {
		e.shader.Destroy()
	}
	if err := e.backend.Shutdown(); err != nil {
		core.LogError("backend shutdown: %v", err)
	}
	if err := e.assetManager.Shutdown(); err != nil {
		core.LogError("asset manager shutdown: %v", err)
	}
	return e.platform.Shutdown()
}
