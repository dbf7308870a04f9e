package codec

import (
	"fmt"
	"testing"
)

type benchNode struct {
	Part     string                `json:"p"`
	PartLen  int                   `json:"l"`
	IsWord   bool                  `json:"w"`
	Children map[string]*benchNode `json:"c,omitempty"`
}

func benchTree(fanout, depth int) *benchNode {
	n := &benchNode{Part: "node", PartLen: 4}
	if depth == 0 {
		n.IsWord = true
		return n
	}
	n.Children = make(map[string]*benchNode, fanout)
	for i := range fanout {
		n.Children[fmt.Sprintf("%c", 'a'+i)] = benchTree(fanout, depth-1)
	}
	return n
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Tree(b *testing.B) {
	tree := benchTree(6, 4)

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, tree) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, tree) })
	b.Run("jsoniter", func(b *testing.B) { benchmarkCodecMarshal(b, JSONIter{}, tree) })
}

func BenchmarkCodec_Unmarshal_Tree(b *testing.B) {
	data, err := JSON{}.Marshal(benchTree(6, 4))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("stdlib", func(b *testing.B) {
		var sink benchNode
		benchmarkCodecUnmarshal(b, JSON{}, data, &sink)
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchNode
		benchmarkCodecUnmarshal(b, GoJSON{}, data, &sink)
	})
	b.Run("jsoniter", func(b *testing.B) {
		var sink benchNode
		benchmarkCodecUnmarshal(b, JSONIter{}, data, &sink)
	})
}
