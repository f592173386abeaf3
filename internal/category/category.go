package category

import (
	"strings"

	"github.com/faturai-dev/faturai/internal/model"
)

// Rule pairs a category with the keywords that select it. Rules are
// evaluated in order and the first keyword hit wins, so a rule earlier in
// the table shadows any later rule sharing a keyword.
type Rule struct {
	Category model.Category
	Keywords []string
}

// TitleRules classifies by free-text transaction title. Keywords are
// merchant-name fragments as they appear on card statements.
var TitleRules = []Rule{
	{model.CategoryFarmacia, []string{"farmacia", "dimed", "panvel", "raia"}},
	{model.CategoryMercado, []string{"bourbon", "carrefour", "lahude", "cestto", "zaffari", "pkr comercio"}},
	{model.CategorySaude, []string{"clinica de vacinas", "colchoes ortobom"}},
	{model.CategoryBeleza, []string{"belshop", "oboticario", "perfumes e prese"}},
	{model.CategoryLazer, []string{"aquila", "produtos globo", "amazon", "multiplos esportes", "villaggio", "pampa burguer"}},
	{model.CategoryEducacao, []string{"kiwify", "google one", "nio fibra"}},
	{model.CategoryVestuario, []string{"lojas renner", "shein"}},
	{model.CategoryEstacionamento, []string{"lyon park", "sigapay"}},
	{model.CategoryManutVeicular, []string{"surdinas car"}},
	{model.CategoryManutPredial, []string{"centervatti"}},
	{model.CategoryMobilidade, []string{"uber"}},
	{model.CategoryComprasOnline, []string{"mercadolivre", "motorola", "conta vivo"}},
}

// InterTypeRules classifies by the category code Banco Inter ships in its
// own export. Kept separate from TitleRules: the two tables key on
// different vocabularies and are not interchangeable.
var InterTypeRules = []Rule{
	{model.CategoryFarmacia, []string{"drogaria"}},
	{model.CategoryMercado, []string{"supermercado"}},
	{model.CategoryMobilidade, []string{"transporte"}},
	{model.CategoryManutPredial, []string{"construcao"}},
	{model.CategoryLazer, []string{"compras"}},
	{model.CategoryEducacao, []string{"ensino"}},
	{model.CategoryOutros, []string{"outros", "pagamentos"}},
	{model.CategoryVestuario, []string{"vestuario"}},
}

// Classify returns the category of the first rule with a keyword contained
// in text, matching case-insensitively. Unmatched text is Outros, never an
// error: the classifier is total over arbitrary input.
func Classify(text string, rules []Rule) model.Category {
	text = strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Category
			}
		}
	}
	return model.CategoryOutros
}
