package body

// CollisionPrimitive3 pairs a Primitive3 with its offset from the
// owning shape's origin and caches its base (local-shape-space) and
// world AABBs.
type CollisionPrimitive3 struct {
	Primitive      Primitive3
	LocalTransform Pose3
	BaseAABB       AABB3
	WorldAABB      AABB3
}

// NewCollisionPrimitive3 derives BaseAABB from the primitive's local
// AABB transformed by localTransform.
func NewCollisionPrimitive3(primitive Primitive3, localTransform Pose3) CollisionPrimitive3 {
	base := primitive.LocalAABB().TransformBy(localTransform)
	return CollisionPrimitive3{
		Primitive:      primitive,
		LocalTransform: localTransform,
		BaseAABB:       base,
		WorldAABB:      base,
	}
}

// CollisionShape3 aggregates one or more convex primitives with their
// local offsets and caches a world AABB bounding all of them. Shapes
// may be concave via multiple convex primitives; the core never
// subdivides them.
type CollisionShape3 struct {
	Enabled    bool
	Strategy   Strategy
	Primitives []CollisionPrimitive3
	BaseAABB   AABB3
	WorldAABB  AABB3
}

// NewCollisionShape3 builds a shape from its primitives. A shape with
// no primitives is disabled per spec §7 ("invalid inputs ... treated
// as disabled").
func NewCollisionShape3(strategy Strategy, primitives ...CollisionPrimitive3) *CollisionShape3 {
	shape := &CollisionShape3{
		Strategy:   strategy,
		Primitives: primitives,
		Enabled:    len(primitives) > 0,
	}
	shape.refreshBaseAABB()
	return shape
}

func (s *CollisionShape3) refreshBaseAABB() {
	if len(s.Primitives) == 0 {
		s.BaseAABB = ZeroAABB3
		s.WorldAABB = ZeroAABB3
		return
	}
	base := s.Primitives[0].BaseAABB
	for _, p := range s.Primitives[1:] {
		base = base.Union(p.BaseAABB)
	}
	s.BaseAABB = base
}

// UpdateWorldAABB re-derives every primitive's and the shape's own
// world AABB against a new model-to-world transform.
func (s *CollisionShape3) UpdateWorldAABB(modelPose Pose3) {
	if !s.Enabled || len(s.Primitives) == 0 {
		s.WorldAABB = ZeroAABB3
		return
	}

	worldPose := modelPose.Concat(s.Primitives[0].LocalTransform)
	world := s.Primitives[0].Primitive.LocalAABB().TransformBy(worldPose)
	s.Primitives[0].WorldAABB = world

	for i := 1; i < len(s.Primitives); i++ {
		p := &s.Primitives[i]
		wp := modelPose.Concat(p.LocalTransform)
		p.WorldAABB = p.Primitive.LocalAABB().TransformBy(wp)
		world = world.Union(p.WorldAABB)
	}
	s.WorldAABB = world
}

// CollisionPrimitive2 is the 2D counterpart of CollisionPrimitive3.
type CollisionPrimitive2 struct {
	Primitive      Primitive2
	LocalTransform Pose2
	BaseAABB       AABB2
	WorldAABB      AABB2
}

func NewCollisionPrimitive2(primitive Primitive2, localTransform Pose2) CollisionPrimitive2 {
	base := primitive.LocalAABB().TransformBy(localTransform)
	return CollisionPrimitive2{
		Primitive:      primitive,
		LocalTransform: localTransform,
		BaseAABB:       base,
		WorldAABB:      base,
	}
}

// CollisionShape2 is the 2D counterpart of CollisionShape3.
type CollisionShape2 struct {
	Enabled    bool
	Strategy   Strategy
	Primitives []CollisionPrimitive2
	BaseAABB   AABB2
	WorldAABB  AABB2
}

func NewCollisionShape2(strategy Strategy, primitives ...CollisionPrimitive2) *CollisionShape2 {
	shape := &CollisionShape2{
		Strategy:   strategy,
		Primitives: primitives,
		Enabled:    len(primitives) > 0,
	}
	shape.refreshBaseAABB()
	return shape
}

func (s *CollisionShape2) refreshBaseAABB() {
	if len(s.Primitives) == 0 {
		s.BaseAABB = ZeroAABB2
		s.WorldAABB = ZeroAABB2
		return
	}
	base := s.Primitives[0].BaseAABB
	for _, p := range s.Primitives[1:] {
		base = base.Union(p.BaseAABB)
	}
	s.BaseAABB = base
}

func (s *CollisionShape2) UpdateWorldAABB(modelPose Pose2) {
	if !s.Enabled || len(s.Primitives) == 0 {
		s.WorldAABB = ZeroAABB2
		return
	}

	worldPose := modelPose.Concat(s.Primitives[0].LocalTransform)
	world := s.Primitives[0].Primitive.LocalAABB().TransformBy(worldPose)
	s.Primitives[0].WorldAABB = world

	for i := 1; i < len(s.Primitives); i++ {
		p := &s.Primitives[i]
		wp := modelPose.Concat(p.LocalTransform)
		p.WorldAABB = p.Primitive.LocalAABB().TransformBy(wp)
		world = world.Union(p.WorldAABB)
	}
	s.WorldAABB = world
}
