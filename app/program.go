package app

import "github.com/gogpu/gg"

// Program is the user logic a backend drives. Both methods run on the
// drive goroutine.
type Program interface {
	// Setup is called once after the backend acquired its resources.
	// Keep the Application if you need to call RequestDraw or Exit later.
	Setup(a Application) error

	// Draw renders one frame into dc.
	Draw(dc *gg.Context)
}

// Closer is implemented by programs that release resources when the loop
// ends.
type Closer interface {
	Close()
}

// ProgramFuncs adapts plain functions to Program. Nil fields are skipped.
type ProgramFuncs struct {
	SetupFunc func(a Application) error
	DrawFunc  func(dc *gg.Context)
	CloseFunc func()
}

// Setup calls SetupFunc.
func (p ProgramFuncs) Setup(a Application) error {
	if p.SetupFunc == nil {
		return nil
	}
	return p.SetupFunc(a)
}

// Draw calls DrawFunc.
func (p ProgramFuncs) Draw(dc *gg.Context) {
	if p.DrawFunc != nil {
		p.DrawFunc(dc)
	}
}

// Close calls CloseFunc.
func (p ProgramFuncs) Close() {
	if p.CloseFunc != nil {
		p.CloseFunc()
	}
}
