package model

// Category is a spending category label. The set is closed: classification
// always lands on one of the constants below, with Outros as the fallback.
type Category string

const (
	CategoryFarmacia       Category = "Farmácia"
	CategoryMercado        Category = "Mercado"
	CategorySaude          Category = "Saúde"
	CategoryBeleza         Category = "Beleza"
	CategoryLazer          Category = "Lazer"
	CategoryEducacao       Category = "Educação"
	CategoryVestuario      Category = "Vestuário"
	CategoryEstacionamento Category = "Estacionamento"
	CategoryManutVeicular  Category = "Manutenção Veicular"
	CategoryManutPredial   Category = "Manutenção Predial"
	CategoryMobilidade     Category = "Mobilidade"
	CategoryComprasOnline  Category = "Compras Online"
	CategoryOutros         Category = "Outros"
)

// Categories returns every label in display order.
func Categories() []Category {
	return []Category{
		CategoryFarmacia,
		CategoryMercado,
		CategorySaude,
		CategoryBeleza,
		CategoryLazer,
		CategoryEducacao,
		CategoryVestuario,
		CategoryEstacionamento,
		CategoryManutVeicular,
		CategoryManutPredial,
		CategoryMobilidade,
		CategoryComprasOnline,
		CategoryOutros,
	}
}
