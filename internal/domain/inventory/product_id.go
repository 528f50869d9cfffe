package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductIDPrefix prefijo de los IDs de producto.
const ProductIDPrefix = "P"

// NextProductID calcula el siguiente ID: "P" + (mayor sufijo numérico + 1) con al menos 3 dígitos.
// IDs que no parsean se ignoran; los huecos no se rellenan.
func NextProductID(existing []string) string {
	highest := 0
	for _, id := range existing {
		n, ok := productSeq(id)
		if ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", ProductIDPrefix, highest+1)
}

func productSeq(id string) (int, bool) {
	if !strings.HasPrefix(id, ProductIDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(ProductIDPrefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
