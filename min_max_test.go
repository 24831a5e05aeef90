package main

import (
	"math/rand"
	"testing"

	"github.com/iannr/Trabalho-individual-2-FPAA/block"
	"github.com/iannr/Trabalho-individual-2-FPAA/minmax"
)

func BenchmarkMinMaxBlockRand(b *testing.B) {

	size := 40000

	input := make([]float64, size)

	for i := 0; i < size; i++ {
		input[i] = float64(rand.Int63n(50000))
	}

	data, _, err := block.Encode(input, block.Lz4Compression)
	if err != nil {
		b.Fatal(err)
	}

	var result minmax.Bounds[float64]

	for b.Loop() {
		_, values, _ := block.Decode(data)
		result, _ = minmax.Select(values)
	}

	b.Logf("min : %.0f, max : %.0f", result.Min, result.Max)
}

func TestMinMax(b *testing.T) {

	minVal := float64(0)
	maxVal := float64(7000)

	input := []float64{minVal, maxVal, 1, 2, 3, 4, 5, 6, 0}

	result, _, err := minmax.SelectWithCount(input[:])
	if err != nil {
		b.Fatalf("unexpected error %v", err)
	}

	if result.Max != maxVal {
		b.Errorf("Expected %.0f but got %.0f", maxVal, result.Max)
	}

	if result.Min != minVal {
		b.Errorf("Expected %.0f but got %.0f", minVal, result.Min)
	}

}

func TestMinMaxFloat(b *testing.T) {

	minVal := -10.0
	maxVal := 7000.0

	input := []float64{minVal, maxVal, 1, 2, 3, 4, 5, 6, 0.0, 1000}

	result, err := minmax.Select(input[:])
	if err != nil {
		b.Fatalf("unexpected error %v", err)
	}

	if result.Max != maxVal {
		b.Errorf("Expected %.2f but got %.2f", maxVal, result.Max)
	}

	if result.Min != minVal {
		b.Errorf("Expected %.2f but got %.2f", minVal, result.Min)
	}

}

func TestMinMaxBlockHeaderBounds(b *testing.T) {

	input := randomSample(42, 11, -50, 50)

	_, header, err := block.Encode(input, block.NoCompression)
	if err != nil {
		b.Fatalf("unexpected error %v", err)
	}

	expected, _ := minmax.Scan(input)

	if header.Bounds != expected {
		b.Errorf("Expected %v but got %v", expected, header.Bounds)
	}
}
