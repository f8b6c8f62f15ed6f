package menu

import "fmt"

// Image URLs follow the backoffice image controller conventions: categories
// serve a 128px variant, products a 1024px one.

func CategoryImageURL(categoryID int64) string {
	return fmt.Sprintf("/web/image/pos.category/%d/image_128", categoryID)
}

func ProductImageURL(productID int64) string {
	return fmt.Sprintf("/web/image/product.product/%d/image_1024", productID)
}
