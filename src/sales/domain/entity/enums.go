package entity

// Customer representa el cliente asociado a una venta (enumeración cerrada)
type Customer string

const (
	CustomerRetail    Customer = "retail"
	CustomerWholesale Customer = "wholesale"
	CustomerOnline    Customer = "online"
	CustomerCorporate Customer = "corporate"
)

// IsValid indica si el valor pertenece a la enumeración
func (c Customer) IsValid() bool {
	switch c {
	case CustomerRetail, CustomerWholesale, CustomerOnline, CustomerCorporate:
		return true
	}
	return false
}

// Branch representa la sucursal donde se realizó la venta (enumeración cerrada)
type Branch string

const (
	BranchDowntown  Branch = "downtown"
	BranchNorth     Branch = "north"
	BranchSouth     Branch = "south"
	BranchWarehouse Branch = "warehouse"
)

// IsValid indica si el valor pertenece a la enumeración
func (b Branch) IsValid() bool {
	switch b {
	case BranchDowntown, BranchNorth, BranchSouth, BranchWarehouse:
		return true
	}
	return false
}

// Product representa el producto vendido en un item (enumeración cerrada)
type Product string

const (
	ProductLager   Product = "lager"
	ProductStout   Product = "stout"
	ProductPilsner Product = "pilsner"
	ProductSoda    Product = "soda"
	ProductWater   Product = "water"
)

// IsValid indica si el valor pertenece a la enumeración
func (p Product) IsValid() bool {
	switch p {
	case ProductLager, ProductStout, ProductPilsner, ProductSoda, ProductWater:
		return true
	}
	return false
}
