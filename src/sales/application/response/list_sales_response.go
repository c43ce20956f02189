package response

// ListSalesResponse es la página de ventas retornada por el listado.
// TotalCount es el total de ventas que cumplen los filtros, no el tamaño de
// la ventana.
type ListSalesResponse struct {
	Items      []SaleResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int            `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}
