package components

// TextParticleComponent represents one pixel sampled from rasterized text.
// A particle is spawned per opaque pixel during the draw phase of a text
// explosion and animated independently until it visually vanishes.
//
// Position is managed via the separate PositionComponent; this component
// keeps the immutable origin so the drift bound can be checked against it.
//
// This is a pure data component following ECS principles - it contains no methods.
type TextParticleComponent struct {
	// 采样原点（画布坐标，创建后不可变）
	OriginX float64
	OriginY float64

	// 采样颜色（0-255，创建后不可变）
	R uint8
	G uint8
	B uint8
	A uint8

	// 当前粒子半边长（像素）
	// 每帧递减固定量，单调不增；<= 0 时粒子退役
	Size float64
}
