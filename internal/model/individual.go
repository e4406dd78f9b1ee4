package model

import (
	"github.com/gyeh/bpagen/internal/normalize"
)

// IndividualRecord is one BPA-I line: a single patient encounter. Dates are
// already rendered as YYYYMMDD.
type IndividualRecord struct {
	CNES               string
	Competencia        string
	CNSProfissional    string
	CBO                string
	DataAtendimento    string
	Folha              string
	Sequencial         string
	Procedimento       string
	CNSPaciente        string
	Sexo               string
	CodigoMunicipio    string
	CID                string
	Idade              string
	Quantidade         string
	CaraterAtendimento string
	NumeroAutorizacao  string
	NomePaciente       string
	DataNascimento     string
	Raca               string
	Etnia              string
	Nacionalidade      string

	Servico          string
	Classificacao    string
	EquipeSeq        string
	EquipeArea       string
	CNPJ             string
	CEP              string
	CodigoLogradouro string
	Endereco         string
	Complemento      string
	Numero           string
	Bairro           string
	Telefone         string
	Email            string
	INE              string
}

// IndividualFromRow builds a BPA-I record, applying the documented defaults
// to optional columns and parsing both date columns.
func IndividualFromRow(r Row) (IndividualRecord, error) {
	if err := r.Require("individualized", IndividualRequired); err != nil {
		return IndividualRecord{}, err
	}
	atendimento, err := compactDate(r, ColDataAtendimento)
	if err != nil {
		return IndividualRecord{}, err
	}
	nascimento, err := compactDate(r, ColDataNascimento)
	if err != nil {
		return IndividualRecord{}, err
	}

	opt := func(col string) string { return r.Get(col, IndividualOptional[col]) }

	return IndividualRecord{
		CNES:               r[ColCNES],
		Competencia:        r[ColCompetencia],
		CNSProfissional:    r[ColCNSProfissional],
		CBO:                r[ColCBO],
		DataAtendimento:    atendimento,
		Folha:              r[ColFolha],
		Sequencial:         r[ColSequencial],
		Procedimento:       r[ColProcedimento],
		CNSPaciente:        r[ColCNSPaciente],
		Sexo:               r[ColSexo],
		CodigoMunicipio:    r[ColCodigoMunicipio],
		CID:                r[ColCID],
		Idade:              r[ColIdade],
		Quantidade:         r[ColQuantidade],
		CaraterAtendimento: opt(ColCaraterAtendimento),
		NumeroAutorizacao:  opt(ColNumeroAutorizacao),
		NomePaciente:       r[ColNomePaciente],
		DataNascimento:     nascimento,
		Raca:               opt(ColRaca),
		Etnia:              opt(ColEtnia),
		Nacionalidade:      opt(ColNacionalidade),
		Servico:            opt(ColServico),
		Classificacao:      opt(ColClassificacao),
		EquipeSeq:          opt(ColEquipeSeq),
		EquipeArea:         opt(ColEquipeArea),
		CNPJ:               opt(ColCNPJ),
		CEP:                opt(ColCEP),
		CodigoLogradouro:   opt(ColCodigoLogradouro),
		Endereco:           opt(ColEndereco),
		Complemento:        opt(ColComplemento),
		Numero:             opt(ColNumero),
		Bairro:             opt(ColBairro),
		Telefone:           opt(ColTelefone),
		Email:              opt(ColEmail),
		INE:                opt(ColINE),
	}, nil
}

func compactDate(r Row, col string) (string, error) {
	t, err := normalize.ParseDate(r[col])
	if err != nil {
		return "", &DateParseError{Field: col, Value: r[col], Err: err}
	}
	return normalize.CompactDate(t), nil
}

// Fields returns the record values keyed by column name.
func (i IndividualRecord) Fields() map[string]string {
	return map[string]string{
		ColCNES:               i.CNES,
		ColCompetencia:        i.Competencia,
		ColCNSProfissional:    i.CNSProfissional,
		ColCBO:                i.CBO,
		ColDataAtendimento:    i.DataAtendimento,
		ColFolha:              i.Folha,
		ColSequencial:         i.Sequencial,
		ColProcedimento:       i.Procedimento,
		ColCNSPaciente:        i.CNSPaciente,
		ColSexo:               i.Sexo,
		ColCodigoMunicipio:    i.CodigoMunicipio,
		ColCID:                i.CID,
		ColIdade:              i.Idade,
		ColQuantidade:         i.Quantidade,
		ColCaraterAtendimento: i.CaraterAtendimento,
		ColNumeroAutorizacao:  i.NumeroAutorizacao,
		ColNomePaciente:       i.NomePaciente,
		ColDataNascimento:     i.DataNascimento,
		ColRaca:               i.Raca,
		ColEtnia:              i.Etnia,
		ColNacionalidade:      i.Nacionalidade,
		ColServico:            i.Servico,
		ColClassificacao:      i.Classificacao,
		ColEquipeSeq:          i.EquipeSeq,
		ColEquipeArea:         i.EquipeArea,
		ColCNPJ:               i.CNPJ,
		ColCEP:                i.CEP,
		ColCodigoLogradouro:   i.CodigoLogradouro,
		ColEndereco:           i.Endereco,
		ColComplemento:        i.Complemento,
		ColNumero:             i.Numero,
		ColBairro:             i.Bairro,
		ColTelefone:           i.Telefone,
		ColEmail:              i.Email,
		ColINE:                i.INE,
	}
}
