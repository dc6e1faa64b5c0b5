package glyphpack_test

import (
	"fmt"
	"log"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphpack"
)

func Example() {
	font, err := glyphpack.InitFont(goregular.TTF, glyphpack.FontOffsetForIndex(goregular.TTF, 0))
	if err != nil {
		log.Fatal(err)
	}

	pixels := make([]byte, 256*256)
	surface, err := glyphpack.PackBegin(pixels, 256, 256, 0, 1)
	if err != nil {
		log.Fatal(err)
	}
	defer surface.End()

	if err := surface.SetOversampling(2, 1); err != nil {
		log.Fatal(err)
	}
	tables, err := surface.PackFontRanges(font,
		glyphpack.PackRange{Size: glyphpack.PixelHeight(18), FirstCodepoint: 32, Count: 95},
	)
	if err != nil {
		log.Fatal(err)
	}

	pen := float32(0)
	for _, r := range "glyph" {
		pen, _, _ = tables[0].Quad(int(r-32), 256, 256, pen, 0, true)
	}
	fmt.Println(tables[0].Count(), pen > 0)
	// Output: 95 true
}
