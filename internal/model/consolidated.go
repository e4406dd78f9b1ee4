package model

// ConsolidatedRecord is one BPA-C line: aggregated production without patient
// identification.
type ConsolidatedRecord struct {
	CNES         string
	Competencia  string
	CBO          string
	Folha        string
	Sequencial   string
	Procedimento string
	Idade        string
	Quantidade   string
}

// ConsolidatedFromRow builds a BPA-C record. All columns are required.
func ConsolidatedFromRow(r Row) (ConsolidatedRecord, error) {
	if err := r.Require("consolidated", ConsolidatedRequired); err != nil {
		return ConsolidatedRecord{}, err
	}
	return ConsolidatedRecord{
		CNES:         r[ColCNES],
		Competencia:  r[ColCompetencia],
		CBO:          r[ColCBO],
		Folha:        r[ColFolha],
		Sequencial:   r[ColSequencial],
		Procedimento: r[ColProcedimento],
		Idade:        r[ColIdade],
		Quantidade:   r[ColQuantidade],
	}, nil
}

// Fields returns the record values keyed by column name.
func (c ConsolidatedRecord) Fields() map[string]string {
	return map[string]string{
		ColCNES:         c.CNES,
		ColCompetencia:  c.Competencia,
		ColCBO:          c.CBO,
		ColFolha:        c.Folha,
		ColSequencial:   c.Sequencial,
		ColProcedimento: c.Procedimento,
		ColIdade:        c.Idade,
		ColQuantidade:   c.Quantidade,
	}
}
