package inspect

import (
	"encoding/json"
	"testing"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/ContainerProbe/types"
)

var benchState = ArrayState[int]{
	Kind:      types.KindArray,
	Len:       16,
	Cap:       16,
	Allocated: true,
	Reallocs:  5,
	Content:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
}

var sinkBytes []byte

func BenchmarkEncodeArrayState_Compact(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes = AppendCompactArray(sinkBytes[:0], benchState)
	}
	b.Logf("Compact size: %d bytes", len(sinkBytes))
}

func BenchmarkEncodeArrayState_GoccyJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = goccyjson.Marshal(benchState)
	}
	b.Logf("goccy/go-json size: %d bytes", len(sinkBytes))
}

func BenchmarkEncodeArrayState_JsonIter(b *testing.B) {
	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = jsonIter.Marshal(benchState)
	}
	b.Logf("jsoniter size: %d bytes", len(sinkBytes))
}

func BenchmarkEncodeArrayState_StdJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = json.Marshal(benchState)
	}
	b.Logf("encoding/json size: %d bytes", len(sinkBytes))
}

func BenchmarkEncodeArrayState_Msgpack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = msgpack.Marshal(benchState)
	}
	b.Logf("msgpack size: %d bytes", len(sinkBytes))
}
