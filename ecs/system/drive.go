package system

import (
	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"go.uber.org/zap"
)

// DriveSystem feeds key events to the updater. Keys the updater does not
// claim go to fallback, except repeats.
type DriveSystem struct {
	updater  *drive.Updater
	fallback func(drive.Key)
	logger   *zap.Logger
}

func NewDriveSystem(updater *drive.Updater, logger *zap.Logger, fallback func(drive.Key)) *DriveSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DriveSystem{updater: updater, fallback: fallback, logger: logger}
}

func (d *DriveSystem) Update(w *ecs.World) {
	if d == nil || d.updater == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventKey {
			continue
		}
		ke, ok := evt.Data.(ecs.KeyEvent)
		if !ok {
			continue
		}
		key := drive.Key(ke.Key)

		if !ke.Down {
			d.updater.OnKeyUp(key)
			d.logger.Debug("key up", zap.String("key", ke.Key))
			continue
		}

		suppressed := d.updater.OnKeyDown(key)
		if ce := d.logger.Check(zap.DebugLevel, "key down"); ce != nil {
			car, car2 := d.updater.State(0), d.updater.State(1)
			ce.Write(
				zap.String("key", ke.Key),
				zap.Bool("repeat", ke.Repeat),
				zap.Bool("suppressed", suppressed),
				zap.Stringer("car", car.Transform()),
				zap.Stringer("car2", car2.Transform()),
			)
		}
		if !suppressed && !ke.Repeat && d.fallback != nil {
			d.fallback(key)
		}
	}
}
