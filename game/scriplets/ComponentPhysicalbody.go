package scriplets

import (
	"github.com/bytearena/box2d"

	"github.com/rparrett/scriplets/common/utils/vector"
)

func (game ScripletsGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody wraps the unit's Box2D body. Bodies are position-driven: the
// movement integrator commits poses directly, the physics world only stores
// them and serves collision queries.
type PhysicalBody struct {
	body *box2d.B2Body
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	v := p.body.GetPosition()
	return vector.MakeVector2(v.X, v.Y)
}

func (p PhysicalBody) GetOrientation() float64 {
	return p.body.GetAngle()
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(v.ToB2Vec2(), p.GetOrientation())
	return p
}

func (p *PhysicalBody) SetOrientation(angle float64) *PhysicalBody {
	p.body.SetTransform(p.body.GetPosition(), angle)
	return p
}

// SetPose commits position and orientation together; the steering
// integrator's arc produces both at once and they must land atomically.
func (p *PhysicalBody) SetPose(v vector.Vector2, angle float64) *PhysicalBody {
	p.body.SetTransform(v.ToB2Vec2(), angle)
	return p
}
