package model

// HeaderTemplate is the CSV shape of the header input.
type HeaderTemplate struct {
	YearMonth  string `csv:"year_month"`
	OrgName    string `csv:"org_name"`
	OrgAcronym string `csv:"org_acronym"`
	CGCCPF     string `csv:"cgc_cpf"`
	DestName   string `csv:"dest_name"`
	DestType   string `csv:"dest_type"`
	Version    string `csv:"version"`
}

// ConsolidatedTemplate is the CSV shape of BPA-C data input.
type ConsolidatedTemplate struct {
	CNES         string `csv:"cnes"`
	Competencia  string `csv:"competencia"`
	CBO          string `csv:"cbo"`
	Folha        string `csv:"folha"`
	Sequencial   string `csv:"sequencial"`
	Procedimento string `csv:"procedimento"`
	Idade        string `csv:"idade"`
	Quantidade   string `csv:"quantidade"`
}

// IndividualTemplate is the CSV shape of BPA-I data input.
type IndividualTemplate struct {
	CNES               string `csv:"cnes"`
	Competencia        string `csv:"competencia"`
	CNSProfissional    string `csv:"cns_profissional"`
	CBO                string `csv:"cbo"`
	DataAtendimento    string `csv:"data_atendimento"`
	Folha              string `csv:"folha"`
	Sequencial         string `csv:"sequencial"`
	Procedimento       string `csv:"procedimento"`
	CNSPaciente        string `csv:"cns_paciente"`
	Sexo               string `csv:"sexo"`
	CodigoMunicipio    string `csv:"codigo_municipio"`
	CID                string `csv:"cid"`
	Idade              string `csv:"idade"`
	Quantidade         string `csv:"quantidade"`
	CaraterAtendimento string `csv:"carater_atendimento"`
	NumeroAutorizacao  string `csv:"numero_autorizacao"`
	NomePaciente       string `csv:"nome_paciente"`
	DataNascimento     string `csv:"data_nascimento"`
	Raca               string `csv:"raca"`
	Etnia              string `csv:"etnia"`
	Nacionalidade      string `csv:"nacionalidade"`
	Servico            string `csv:"servico"`
	Classificacao      string `csv:"classificacao"`
	EquipeSeq          string `csv:"equipe_seq"`
	EquipeArea         string `csv:"equipe_area"`
	CNPJ               string `csv:"cnpj"`
	CEP                string `csv:"cep"`
	CodigoLogradouro   string `csv:"codigo_logradouro"`
	Endereco           string `csv:"endereco"`
	Complemento        string `csv:"complemento"`
	Numero             string `csv:"numero"`
	Bairro             string `csv:"bairro"`
	Telefone           string `csv:"telefone"`
	Email              string `csv:"email"`
	INE                string `csv:"ine"`
}

// SampleHeader returns one illustrative header row.
func SampleHeader() []HeaderTemplate {
	return []HeaderTemplate{{
		YearMonth:  "202401",
		OrgName:    "UBS CENTRAL",
		OrgAcronym: "UBSC",
		CGCCPF:     "12345678000199",
		DestName:   "SECRETARIA SAUDE",
		DestType:   "M",
		Version:    "1.0.0",
	}}
}

// SampleConsolidated returns one illustrative BPA-C row.
func SampleConsolidated() []ConsolidatedTemplate {
	return []ConsolidatedTemplate{{
		CNES:         "1234567",
		Competencia:  "202401",
		CBO:          "225125",
		Folha:        "1",
		Sequencial:   "1",
		Procedimento: "0301010010",
		Idade:        "30",
		Quantidade:   "5",
	}}
}

// SampleIndividual returns one illustrative BPA-I row. Optional columns are
// left blank so their defaults apply.
func SampleIndividual() []IndividualTemplate {
	return []IndividualTemplate{{
		CNES:            "1234567",
		Competencia:     "202401",
		CNSProfissional: "123456789012345",
		CBO:             "225125",
		DataAtendimento: "2024-01-15",
		Folha:           "1",
		Sequencial:      "1",
		Procedimento:    "0301010010",
		CNSPaciente:     "987654321098765",
		Sexo:            "F",
		CodigoMunicipio: "355030",
		CID:             "Z000",
		Idade:           "30",
		Quantidade:      "1",
		NomePaciente:    "MARIA DA SILVA",
		DataNascimento:  "1994-03-02",
	}}
}
