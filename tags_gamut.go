package iccmax

// GamutBoundaryDesc is a gamutBoundaryDescType ('gbd ') payload: a triangulated gamut surface.
type GamutBoundaryDesc struct {
	PCSChannels    uint16
	DeviceChannels uint16
	Triangles      [][3]uint32 // vertex indices
	PCSVertices    [][]float32
	DeviceVertices [][]float32 // nil when DeviceChannels == 0
}

func (*GamutBoundaryDesc) TypeSignature() Signature { return TypeGamutBoundaryDesc }
func (*GamutBoundaryDesc) isTagData()               {}

func gamutBoundaryDescDecoder(b *block) (TagData, error) {
	result := &GamutBoundaryDesc{PCSChannels: b.u16(), DeviceChannels: b.u16()}
	vertices, triangles := b.u32(), b.u32()
	if b.err == nil && result.PCSChannels == 0 {
		b.fail("gamut boundary without PCS channels")
	}
	if b.err == nil && vertices < 4 {
		b.fail("gamut boundary of %d vertices", vertices)
	}
	result.Triangles = make([][3]uint32, b.count(uint64(triangles), 12, "triangles"))
	for i := range result.Triangles {
		t := [3]uint32{b.u32(), b.u32(), b.u32()}
		for _, v := range t {
			if v >= vertices && b.err == nil {
				b.fail("triangle %d references vertex %d of %d", i, v, vertices)
			}
		}
		result.Triangles[i] = t
	}
	result.PCSVertices = vertexValues(b, vertices, result.PCSChannels, "PCS vertices")
	if result.DeviceChannels > 0 {
		result.DeviceVertices = vertexValues(b, vertices, result.DeviceChannels, "device vertices")
	}
	return b.result(result)
}

func vertexValues(b *block, vertices uint32, channels uint16, what string) [][]float32 {
	n := b.count(uint64(vertices)*uint64(channels), 4, what)
	if channels == 0 || n == 0 {
		return nil
	}
	values := make([][]float32, n/int(channels))
	for i := range values {
		v := make([]float32, channels)
		for j := range v {
			v[j] = b.f32()
		}
		values[i] = v
	}
	return values
}
