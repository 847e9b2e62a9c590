package tetroku

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// tiles is the base shape set. Each entry is drawn as it appears on screen,
// top row first.
var tiles = []Mino{
	// 3x3 L
	MustParseMino(
		".....",
		".#...",
		".#...",
		".###.",
		".....",
	),
	// 3x2 L
	MustParseMino(
		".....",
		".#...",
		".###.",
		".....",
		".....",
	),
	// 2x2 L
	MustParseMino(
		".....",
		"..#..",
		"..##.",
		".....",
		".....",
	),
	// 1x1
	MustParseMino(
		".....",
		".....",
		"..#..",
		".....",
		".....",
	),
	// 2x2
	MustParseMino(
		".....",
		".....",
		"..##.",
		"..##.",
		".....",
	),
	// 2 diagonal
	MustParseMino(
		".....",
		".....",
		"..#..",
		"...#.",
		".....",
	),
	// 3 diagonal
	MustParseMino(
		".....",
		".#...",
		"..#..",
		"...#.",
		".....",
	),
	// 2, 3, 4, 5 bar
	MustParseMino(
		".....",
		".....",
		".##..",
		".....",
		".....",
	),
	MustParseMino(
		".....",
		".....",
		".###.",
		".....",
		".....",
	),
	MustParseMino(
		".....",
		".....",
		"####.",
		".....",
		".....",
	),
	MustParseMino(
		".....",
		".....",
		"#####",
		".....",
		".....",
	),
	// 2x3 C
	MustParseMino(
		".....",
		".##..",
		".#...",
		".##..",
		".....",
	),
	// 2x3 S and Z
	MustParseMino(
		".....",
		".##..",
		"..##.",
		".....",
		".....",
	),
	// 2- and 3-tall T
	MustParseMino(
		".....",
		".###.",
		"..#..",
		".....",
		".....",
	),
	MustParseMino(
		".....",
		".###.",
		"..#..",
		"..#..",
		".....",
	),
	// 3x3 plus
	MustParseMino(
		".....",
		"..#..",
		".###.",
		"..#..",
		".....",
	),
}

// Catalog returns the base shapes in their fixed order. The returned slice is
// a copy.
func Catalog() []Mino {
	return slices.Clone(tiles)
}

// NumTiles is the number of base shapes in the catalog.
func NumTiles() int {
	return len(tiles)
}

// Tile returns the i-th catalog shape. It panics if i is out of range.
func Tile(i int) Mino {
	return tiles[i]
}

// catalogIndex maps the key of every orientation of every tile to the tile's
// catalog position. Built once at package init.
var catalogIndex = buildCatalogIndex()

func buildCatalogIndex() *intmap.Map[uint32, int] {
	index := intmap.New[uint32, int](len(tiles) * len(allTransforms))
	for i, tile := range tiles {
		for _, orientation := range tile.Orientations() {
			if _, ok := index.Get(orientation.Key()); !ok {
				index.Put(orientation.Key(), i)
			}
		}
	}
	return index
}

// CatalogIndex returns the position in the catalog of the shape m was derived
// from by rigid transformations. ok is false if m is not a catalog shape or a
// transformation of one. Translated shapes are not recognised.
func CatalogIndex(m Mino) (index int, ok bool) {
	return catalogIndex.Get(m.Key())
}
