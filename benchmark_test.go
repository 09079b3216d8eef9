package keyfile

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"
)

func BenchmarkLoadBinary(b *testing.B) {
	raw := makeKey(32)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Load(ctx, raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadHex(b *testing.B) {
	raw := []byte(hex.EncodeToString(makeKey(32)))
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Load(ctx, raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadXML(b *testing.B) {
	raw := serializeKey(makeKey(32))
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Load(ctx, raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadHashFallback64KB(b *testing.B) {
	raw := bytes.Repeat([]byte{0x5A}, 64*1024)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Load(ctx, raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Create(nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseXMLKey(b *testing.B) {
	doc := serializeKey(makeKey(32))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := parseXMLKey(doc); !ok {
			b.Fatal("parseXMLKey missed")
		}
	}
}
