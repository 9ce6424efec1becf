package scriplets

import (
	"github.com/rparrett/scriplets/program"
)

func (game ScripletsGame) CastProgram(data interface{}) *Program {
	return data.(*Program)
}

// Program holds the unit's script runtime. One isolated interpreter per
// unit, never shared.
type Program struct {
	runtime *program.UnitProgram
}

func NewProgram(runtime *program.UnitProgram) *Program {
	return &Program{
		runtime: runtime,
	}
}

func (p *Program) GetRuntime() *program.UnitProgram {
	return p.runtime
}
