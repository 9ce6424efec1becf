package scriplets

import (
	"math"

	"github.com/bytearena/box2d"

	commontypes "github.com/rparrett/scriplets/common/types"
	"github.com/rparrett/scriplets/common/utils/vector"
)

// minSweepSamples is the floor on the number of pose samples tested along a
// step's delta. The actual count scales with the delta so that consecutive
// samples are never further apart than half a collider extent; a step of any
// magnitude cannot pass between samples through wall-sized geometry.
const minSweepSamples = 8

// SweepHit reports the first obstruction found along a swept motion.
type SweepHit struct {
	Descriptor commontypes.PhysicalBodyDescriptor
	Fraction   float64
}

// sweepBody answers: would this body's shape, translating by delta while
// turning to targetAngle, hit any solid fixture? The body's own fixtures
// and sensors are excluded. The query is read-only and sees only committed
// positions, never this step's uncommitted deltas; nil means the delta is
// safe to commit.
func (game *ScripletsGame) sweepBody(body *box2d.B2Body, delta vector.Vector2, targetAngle float64) *SweepHit {
	fixture := body.GetFixtureList()
	if fixture == nil {
		return nil
	}

	shape := fixture.GetShape()
	startPosition := vector.FromB2Vec2(body.GetPosition())
	startAngle := body.GetAngle()

	endPosition := startPosition.Add(delta)

	startTransform := makeTransform(startPosition, startAngle)
	endTransform := makeTransform(endPosition, targetAngle)

	var startAABB, endAABB box2d.B2AABB
	shape.ComputeAABB(&startAABB, startTransform, 0)
	shape.ComputeAABB(&endAABB, endTransform, 0)

	region := box2d.B2AABB{
		LowerBound: box2d.MakeB2Vec2(
			math.Min(startAABB.LowerBound.X, endAABB.LowerBound.X),
			math.Min(startAABB.LowerBound.Y, endAABB.LowerBound.Y),
		),
		UpperBound: box2d.MakeB2Vec2(
			math.Max(startAABB.UpperBound.X, endAABB.UpperBound.X),
			math.Max(startAABB.UpperBound.Y, endAABB.UpperBound.Y),
		),
	}

	candidates := make([]*box2d.B2Fixture, 0)
	game.PhysicalWorld.QueryAABB(func(candidate *box2d.B2Fixture) bool {
		if candidate.GetBody() == body {
			return true // exclude self
		}

		if candidate.IsSensor() {
			return true // exclude sensors
		}

		candidates = append(candidates, candidate)
		return true
	}, region)

	if len(candidates) == 0 {
		return nil
	}

	samples := minSweepSamples
	if needed := int(math.Ceil(delta.Mag() / unitColliderHalfExtent)); needed > samples {
		samples = needed
	}

	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)

		samplePosition := startPosition.Add(delta.MultScalar(t))
		sampleAngle := startAngle + (targetAngle-startAngle)*t
		sampleTransform := makeTransform(samplePosition, sampleAngle)

		for _, candidate := range candidates {
			otherShape := candidate.GetShape()
			otherTransform := candidate.GetBody().GetTransform()

			for child := 0; child < otherShape.GetChildCount(); child++ {
				if box2d.B2TestOverlapShapes(shape, 0, otherShape, child, sampleTransform, otherTransform) {
					hit := &SweepHit{
						Fraction: t,
					}

					if descriptor, ok := candidate.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor); ok {
						hit.Descriptor = descriptor
					}

					return hit
				}
			}
		}
	}

	return nil
}

func makeTransform(position vector.Vector2, angle float64) box2d.B2Transform {
	return box2d.MakeB2TransformByPositionAndRotation(
		position.ToB2Vec2(),
		box2d.MakeB2RotFromAngle(angle),
	)
}
