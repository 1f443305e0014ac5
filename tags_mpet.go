package iccmax

import "github.com/go-andiamo/iccmax/internal/cursor"

// MultiProcessElements is a multiProcessElementsType ('mpet') payload.
//
// Stages are kept as raw bytes; their internal grammar belongs to the transform evaluator.
type MultiProcessElements struct {
	InputChannels  uint16
	OutputChannels uint16
	Stages         []ProcessStage
}

func (*MultiProcessElements) TypeSignature() Signature { return TypeMultiProcessElements }
func (*MultiProcessElements) isTagData()               {}

// ProcessStage is one processing element of a multiProcessElementsType.
type ProcessStage struct {
	TypeSig        Signature // e.g. 'cvst', 'matf', 'clut'
	InputChannels  uint16
	OutputChannels uint16
	// Raw is the complete element, including its 12 byte header
	Raw []byte
}

const processStageHeaderSize = 12

func multiProcessElementsDecoder(b *block) (TagData, error) {
	inCh, outCh := b.u16(), b.u16()
	n := b.count(uint64(b.u32()), 8, "processing elements")
	if b.err == nil && n == 0 {
		b.fail("no processing elements")
	}
	minOffset := uint32(16 + 8*n)
	positions := make([]PositionNumber, n)
	for i := range positions {
		positions[i] = b.position()
	}
	stages := make([]ProcessStage, 0, n)
	prevOut := inCh
	for i, p := range positions {
		if !b.resolve(p, minOffset, true, "processing element") {
			break
		}
		if p.Size < processStageHeaderSize {
			b.fail("processing element %d of %d bytes is shorter than its header", i, p.Size)
			break
		}
		b.follow(p, func() {
			raw := b.raw(int64(p.Size))
			if b.err != nil {
				return
			}
			stage := processStage(raw)
			if stage.InputChannels != prevOut {
				b.failAt(b.start+int64(p.Offset), "processing element %d takes %d channels, previous stage gives %d", i, stage.InputChannels, prevOut)
				return
			}
			prevOut = stage.OutputChannels
			stages = append(stages, stage)
		})
	}
	if b.err == nil && prevOut != outCh {
		b.fail("last processing element gives %d channels, tag declares %d", prevOut, outCh)
	}
	b.seekEnd()
	return b.result(&MultiProcessElements{InputChannels: inCh, OutputChannels: outCh, Stages: stages})
}

func processStage(raw []byte) ProcessStage {
	c := cursor.New(raw)
	sig, _ := c.ReadUint32()
	_ = c.Skip(4)
	in, _ := c.ReadUint16()
	out, _ := c.ReadUint16()
	return ProcessStage{TypeSig: Signature(sig), InputChannels: in, OutputChannels: out, Raw: raw}
}
