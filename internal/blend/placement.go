package blend

import "fmt"

// Validate checks that a maskW×maskH footprint placed at (mx, my) keeps a
// margin inside a targetW×targetH image, so that every blended pixel has
// four neighbours in the target.
func Validate(mx, my, maskW, maskH, targetW, targetH int) error {
	if maskW <= 0 || maskH <= 0 {
		return fmt.Errorf("empty mask %dx%d", maskW, maskH)
	}
	if targetW <= 0 || targetH <= 0 {
		return fmt.Errorf("empty target %dx%d", targetW, targetH)
	}
	xmin, ymin := mx, my
	xmax, ymax := mx+maskW, my+maskH
	if xmin > 0 && ymin > 0 && xmax < targetW-1 && ymax < targetH-1 {
		return nil
	}
	return fmt.Errorf("source footprint min=(%d,%d) max=(%d,%d) does not fit in target %dx%d: need min>=(1,1) and max<=(%d,%d)",
		xmin, ymin, xmax, ymax, targetW, targetH, targetW-2, targetH-2)
}
