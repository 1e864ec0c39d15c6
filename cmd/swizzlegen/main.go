// Command swizzlegen writes the swizzle accessors of the glm vector types.
//
// For a vector of width n it emits one method for every ordered selection
// of 2, 3 or 4 of its component letters, with repetition, n²+n³+n⁴ in total.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

func main() {
	pkg := flag.String("package", "glm", "package name of the generated files")
	out := flag.String("out", ".", "output directory")
	width := flag.Int("width", 0, "only generate the vector of this width, 0 for all")
	flag.Parse()

	widths := []int{2, 3, 4}
	if *width != 0 {
		widths = []int{*width}
	}

	err := generate(*pkg, *out, widths)
	handle(err, "generate swizzles into %q", *out)
}

func generate(pkg, out string, widths []int) error {
	for _, width := range widths {
		if width < 2 || width > 4 {
			return fmt.Errorf("unsupported vector width %d", width)
		}

		source, err := render(pkg, width)
		if err != nil {
			return fmt.Errorf("render %s: %w", vectorType(width), err)
		}

		target := filepath.Join(out, fileName(width))

		if err := os.WriteFile(target, source, 0o644); err != nil {
			return err
		}

		slog.Info("Wrote swizzle accessors",
			slog.String("type", vectorType(width)),
			slog.Int("count", len(swizzlesOf(width))),
			slog.String("path", target),
		)
	}

	return nil
}

func handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}

func fileName(width int) string {
	return fmt.Sprintf("swizzle_vec%d.go", width)
}
