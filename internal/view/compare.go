package view

import (
	"context"
	"math"
	"net/url"
	"strconv"

	"storefront/internal/client"
)

// Format says how a comparison value is rendered.
type Format string

const (
	FormatCurrency Format = "currency"
	FormatRating   Format = "rating"
	FormatNumber   Format = "number"
	FormatText     Format = "text"
	FormatCategory Format = "category"
	FormatStock    Format = "stock"
	FormatBoolean  Format = "boolean"
)

// ComparisonRow is one line of the comparison table.
type ComparisonRow struct {
	Label  string
	Key    string
	Format Format
}

// ComparisonRows lists the table lines in display order.
var ComparisonRows = []ComparisonRow{
	{Label: "Price", Key: "price", Format: FormatCurrency},
	{Label: "Rating", Key: "rating", Format: FormatRating},
	{Label: "Reviews", Key: "reviewCount", Format: FormatNumber},
	{Label: "Brand", Key: "brand", Format: FormatText},
	{Label: "Category", Key: "category", Format: FormatCategory},
	{Label: "Stock", Key: "stock", Format: FormatStock},
	{Label: "Premium Early Access", Key: "premiumEarlyAccess", Format: FormatBoolean},
}

// Winner names the side that is better on a row.
type Winner string

const (
	WinnerProduct1 Winner = "product1"
	WinnerProduct2 Winner = "product2"
	WinnerEqual    Winner = "equal"
)

// ProductID is id, then productId, then 0.
func ProductID(p *client.Product) int64 {
	switch {
	case p == nil:
		return 0
	case p.ID != nil:
		return *p.ID
	case p.ProductID != nil:
		return *p.ProductID
	default:
		return 0
	}
}

// ProductStock is stock, then stockQuantity, then 0.
func ProductStock(p *client.Product) int64 {
	switch {
	case p == nil:
		return 0
	case p.Stock != nil:
		return *p.Stock
	case p.StockQuantity != nil:
		return *p.StockQuantity
	default:
		return 0
	}
}

// ProductRating is rating, then averageRating, then 0.
func ProductRating(p *client.Product) float64 {
	switch {
	case p == nil:
		return 0
	case p.Rating != nil:
		return *p.Rating
	case p.AverageRating != nil:
		return *p.AverageRating
	default:
		return 0
	}
}

// ValueOf extracts the value shown for key. Unknown keys are absent.
func ValueOf(p *client.Product, key string) Value {
	if p == nil {
		return Absent()
	}
	switch key {
	case "category":
		if p.CategoryName != nil {
			return Text(*p.CategoryName)
		}
		if p.Category != nil {
			return Text(p.Category.Name)
		}
		return Text("N/A")
	case "rating":
		return Number(ProductRating(p))
	case "stock":
		return Number(float64(ProductStock(p)))
	case "id":
		return optionalInt(p.ID)
	case "productId":
		return optionalInt(p.ProductID)
	case "name":
		return Text(p.Name)
	case "description":
		return Text(p.Description)
	case "brand":
		if p.Brand == nil {
			return Absent()
		}
		return Text(*p.Brand)
	case "price":
		if p.Price == nil {
			return Absent()
		}
		return Number(*p.Price)
	case "reviewCount":
		return optionalInt(p.ReviewCount)
	case "premiumEarlyAccess":
		if p.PremiumEarlyAccess == nil {
			return Absent()
		}
		return Bool(*p.PremiumEarlyAccess)
	default:
		return Absent()
	}
}

func optionalInt(n *int64) Value {
	if n == nil {
		return Absent()
	}
	return Number(float64(*n))
}

// FormatValue renders v for display.
func FormatValue(v Value, f Format) string {
	if v.IsAbsent() {
		return "N/A"
	}
	switch f {
	case FormatCurrency:
		return "₹" + v.localized()
	case FormatRating:
		// Averages arrive unrounded; only the display is cut to two places.
		if n, ok := v.Float(); ok {
			return strconv.FormatFloat(math.Round(n*100)/100, 'f', -1, 64) + "/5"
		}
		return v.String() + "/5"
	case FormatNumber:
		return v.localized()
	case FormatStock:
		if n, ok := v.Float(); ok && n > 0 {
			return v.String() + " in stock"
		}
		return "Out of stock"
	case FormatBoolean:
		if v.truthy() {
			return "Yes"
		}
		return "No"
	default:
		return v.String()
	}
}

// IsBetter decides which side wins a row. Lower price wins; higher rating, review
// count and stock win. Other keys, absent values and ties are equal.
func IsBetter(key string, v1, v2 Value) Winner {
	if v1.IsAbsent() || v2.IsAbsent() || v1 == v2 {
		return WinnerEqual
	}
	a, ok1 := v1.Float()
	b, ok2 := v2.Float()
	if !ok1 || !ok2 {
		return WinnerEqual
	}

	switch key {
	case "price":
		if a < b {
			return WinnerProduct1
		}
		return WinnerProduct2
	case "rating", "reviewCount", "stock":
		if a > b {
			return WinnerProduct1
		}
		return WinnerProduct2
	default:
		return WinnerEqual
	}
}

// ProductAPI is the product endpoint the comparison page reads.
type ProductAPI interface {
	CompareProducts(ctx context.Context, ids []int64) ([]client.Product, error)
}

// CartAPI is the cart endpoint the comparison page writes.
type CartAPI interface {
	AddToCart(ctx context.Context, productID int64) (*client.Cart, error)
}

// TableLine is a rendered comparison row.
type TableLine struct {
	Label  string
	Value1 string
	Value2 string
	Winner Winner
}

// CompareView is the side-by-side comparison page of two products.
type CompareView struct {
	products ProductAPI
	cart     CartAPI
	session  Session
	notifier Notifier
	nav      Navigator

	Product1 *client.Product
	Product2 *client.Product
	Loading  bool
}

func NewCompareView(products ProductAPI, cart CartAPI, session Session, notifier Notifier, nav Navigator) *CompareView {
	return &CompareView{
		products: products,
		cart:     cart,
		session:  session,
		notifier: notifier,
		nav:      nav,
		Loading:  true,
	}
}

// Init reads id1 and id2 from the page query and loads both products.
func (v *CompareView) Init(ctx context.Context, query url.Values) {
	id1, err1 := strconv.ParseInt(query.Get("id1"), 10, 64)
	id2, err2 := strconv.ParseInt(query.Get("id2"), 10, 64)
	if err1 != nil || err2 != nil {
		v.notifier.Notify(closeToast("Please select two products to compare"))
		v.nav.Navigate("/products", nil)
		return
	}
	v.Load(ctx, id1, id2)
}

// Load fetches both products. A failure sends the user back to the product list.
func (v *CompareView) Load(ctx context.Context, id1, id2 int64) {
	v.Loading = true
	defer func() { v.Loading = false }()

	res, err := v.products.CompareProducts(ctx, []int64{id1, id2})
	if err != nil {
		v.notifier.Notify(closeToast("Failed to load products"))
		v.nav.Navigate("/products", nil)
		return
	}

	v.Product1, v.Product2 = nil, nil
	if len(res) > 0 {
		v.Product1 = &res[0]
	}
	if len(res) > 1 {
		v.Product2 = &res[1]
	}
}

// Table renders every comparison row for the loaded products.
func (v *CompareView) Table() []TableLine {
	lines := make([]TableLine, 0, len(ComparisonRows))
	for _, row := range ComparisonRows {
		a := ValueOf(v.Product1, row.Key)
		b := ValueOf(v.Product2, row.Key)
		lines = append(lines, TableLine{
			Label:  row.Label,
			Value1: FormatValue(a, row.Format),
			Value2: FormatValue(b, row.Format),
			Winner: IsBetter(row.Key, a, b),
		})
	}
	return lines
}

// AddToCart puts one unit of p in the cart, asking anonymous users to log in first.
func (v *CompareView) AddToCart(ctx context.Context, p *client.Product) {
	if p == nil {
		return
	}
	if v.session == nil || !v.session.LoggedIn() {
		v.notifier.Notify(Toast{
			Message:  "Please login to add items to cart",
			Action:   "Login",
			Duration: DefaultToastDuration,
			OnAction: func() { v.nav.Navigate("/login", nil) },
		})
		return
	}

	id := ProductID(p)
	if id == 0 {
		return
	}
	if _, err := v.cart.AddToCart(ctx, id); err != nil {
		v.notifier.Notify(closeToast("Failed to add to cart"))
		return
	}
	v.notifier.Notify(Toast{
		Message:  "Added to cart!",
		Action:   "View Cart",
		Duration: DefaultToastDuration,
		OnAction: func() { v.nav.Navigate("/cart", nil) },
	})
}

// ViewProduct opens the product page for a positive id.
func (v *CompareView) ViewProduct(id int64) {
	viewProduct(v.nav, id)
}

func viewProduct(nav Navigator, id int64) {
	if id > 0 {
		nav.Navigate("/products/"+strconv.FormatInt(id, 10), nil)
	}
}
