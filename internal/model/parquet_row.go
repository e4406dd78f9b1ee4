package model

// ProductionRow mirrors the Parquet schema for BPA detail data. Every column
// is an optional string; a null or absent column is treated as missing.
// BPA-C files only need the first eight columns.
type ProductionRow struct {
	CNES         *string `parquet:"cnes,optional"`
	Competencia  *string `parquet:"competencia,optional"`
	CBO          *string `parquet:"cbo,optional"`
	Folha        *string `parquet:"folha,optional"`
	Sequencial   *string `parquet:"sequencial,optional"`
	Procedimento *string `parquet:"procedimento,optional"`
	Idade        *string `parquet:"idade,optional"`
	Quantidade   *string `parquet:"quantidade,optional"`

	// BPA-I patient and encounter
	CNSProfissional    *string `parquet:"cns_profissional,optional"`
	DataAtendimento    *string `parquet:"data_atendimento,optional"`
	CNSPaciente        *string `parquet:"cns_paciente,optional"`
	Sexo               *string `parquet:"sexo,optional"`
	CodigoMunicipio    *string `parquet:"codigo_municipio,optional"`
	CID                *string `parquet:"cid,optional"`
	CaraterAtendimento *string `parquet:"carater_atendimento,optional"`
	NumeroAutorizacao  *string `parquet:"numero_autorizacao,optional"`
	NomePaciente       *string `parquet:"nome_paciente,optional"`
	DataNascimento     *string `parquet:"data_nascimento,optional"`
	Raca               *string `parquet:"raca,optional"`
	Etnia              *string `parquet:"etnia,optional"`
	Nacionalidade      *string `parquet:"nacionalidade,optional"`

	// BPA-I service, team and address
	Servico          *string `parquet:"servico,optional"`
	Classificacao    *string `parquet:"classificacao,optional"`
	EquipeSeq        *string `parquet:"equipe_seq,optional"`
	EquipeArea       *string `parquet:"equipe_area,optional"`
	CNPJ             *string `parquet:"cnpj,optional"`
	CEP              *string `parquet:"cep,optional"`
	CodigoLogradouro *string `parquet:"codigo_logradouro,optional"`
	Endereco         *string `parquet:"endereco,optional"`
	Complemento      *string `parquet:"complemento,optional"`
	Numero           *string `parquet:"numero,optional"`
	Bairro           *string `parquet:"bairro,optional"`
	Telefone         *string `parquet:"telefone,optional"`
	Email            *string `parquet:"email,optional"`
	INE              *string `parquet:"ine,optional"`
}

// Row returns the non-null columns as a Row.
func (p *ProductionRow) Row() Row {
	return rowOf(map[string]*string{
		ColCNES:               p.CNES,
		ColCompetencia:        p.Competencia,
		ColCBO:                p.CBO,
		ColFolha:              p.Folha,
		ColSequencial:         p.Sequencial,
		ColProcedimento:       p.Procedimento,
		ColIdade:              p.Idade,
		ColQuantidade:         p.Quantidade,
		ColCNSProfissional:    p.CNSProfissional,
		ColDataAtendimento:    p.DataAtendimento,
		ColCNSPaciente:        p.CNSPaciente,
		ColSexo:               p.Sexo,
		ColCodigoMunicipio:    p.CodigoMunicipio,
		ColCID:                p.CID,
		ColCaraterAtendimento: p.CaraterAtendimento,
		ColNumeroAutorizacao:  p.NumeroAutorizacao,
		ColNomePaciente:       p.NomePaciente,
		ColDataNascimento:     p.DataNascimento,
		ColRaca:               p.Raca,
		ColEtnia:              p.Etnia,
		ColNacionalidade:      p.Nacionalidade,
		ColServico:            p.Servico,
		ColClassificacao:      p.Classificacao,
		ColEquipeSeq:          p.EquipeSeq,
		ColEquipeArea:         p.EquipeArea,
		ColCNPJ:               p.CNPJ,
		ColCEP:                p.CEP,
		ColCodigoLogradouro:   p.CodigoLogradouro,
		ColEndereco:           p.Endereco,
		ColComplemento:        p.Complemento,
		ColNumero:             p.Numero,
		ColBairro:             p.Bairro,
		ColTelefone:           p.Telefone,
		ColEmail:              p.Email,
		ColINE:                p.INE,
	})
}

// HeaderRow mirrors the Parquet schema for the batch header.
type HeaderRow struct {
	YearMonth   *string `parquet:"year_month,optional"`
	TotalLines  *string `parquet:"total_lines,optional"`
	TotalSheets *string `parquet:"total_sheets,optional"`
	OrgName     *string `parquet:"org_name,optional"`
	OrgAcronym  *string `parquet:"org_acronym,optional"`
	CGCCPF      *string `parquet:"cgc_cpf,optional"`
	DestName    *string `parquet:"dest_name,optional"`
	DestType    *string `parquet:"dest_type,optional"`
	Version     *string `parquet:"version,optional"`
}

// Row returns the non-null columns as a Row.
func (h *HeaderRow) Row() Row {
	return rowOf(map[string]*string{
		ColYearMonth:   h.YearMonth,
		ColTotalLines:  h.TotalLines,
		ColTotalSheets: h.TotalSheets,
		ColOrgName:     h.OrgName,
		ColOrgAcronym:  h.OrgAcronym,
		ColCGCCPF:      h.CGCCPF,
		ColDestName:    h.DestName,
		ColDestType:    h.DestType,
		ColVersion:     h.Version,
	})
}

func rowOf(cols map[string]*string) Row {
	r := make(Row, len(cols))
	for k, v := range cols {
		if v != nil {
			r[k] = *v
		}
	}
	return r
}
