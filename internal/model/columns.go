package model

// Header input columns.
const (
	ColYearMonth   = "year_month"
	ColTotalLines  = "total_lines"
	ColTotalSheets = "total_sheets"
	ColOrgName     = "org_name"
	ColOrgAcronym  = "org_acronym"
	ColCGCCPF      = "cgc_cpf"
	ColDestName    = "dest_name"
	ColDestType    = "dest_type"
	ColVersion     = "version"
)

// Detail input columns shared by BPA-C and BPA-I.
const (
	ColCNES         = "cnes"
	ColCompetencia  = "competencia"
	ColCBO          = "cbo"
	ColFolha        = "folha"
	ColSequencial   = "sequencial"
	ColProcedimento = "procedimento"
	ColIdade        = "idade"
	ColQuantidade   = "quantidade"
)

// BPA-I only columns.
const (
	ColCNSProfissional    = "cns_profissional"
	ColDataAtendimento    = "data_atendimento"
	ColCNSPaciente        = "cns_paciente"
	ColSexo               = "sexo"
	ColCodigoMunicipio    = "codigo_municipio"
	ColCID                = "cid"
	ColCaraterAtendimento = "carater_atendimento"
	ColNumeroAutorizacao  = "numero_autorizacao"
	ColNomePaciente       = "nome_paciente"
	ColDataNascimento     = "data_nascimento"
	ColRaca               = "raca"
	ColEtnia              = "etnia"
	ColNacionalidade      = "nacionalidade"
	ColServico            = "servico"
	ColClassificacao      = "classificacao"
	ColEquipeSeq          = "equipe_seq"
	ColEquipeArea         = "equipe_area"
	ColCNPJ               = "cnpj"
	ColCEP                = "cep"
	ColCodigoLogradouro   = "codigo_logradouro"
	ColEndereco           = "endereco"
	ColComplemento        = "complemento"
	ColNumero             = "numero"
	ColBairro             = "bairro"
	ColTelefone           = "telefone"
	ColEmail              = "email"
	ColINE                = "ine"
)

// HeaderRequired lists the header columns that must be present.
var HeaderRequired = []string{
	ColYearMonth, ColOrgName, ColOrgAcronym, ColCGCCPF, ColDestName, ColDestType,
}

// ConsolidatedRequired lists the BPA-C columns that must be present.
var ConsolidatedRequired = []string{
	ColCNES, ColCompetencia, ColCBO, ColFolha, ColSequencial, ColProcedimento, ColIdade, ColQuantidade,
}

// IndividualRequired lists the BPA-I columns that must be present.
var IndividualRequired = []string{
	ColCNES, ColCompetencia, ColCNSProfissional, ColCBO, ColDataAtendimento,
	ColFolha, ColSequencial, ColProcedimento, ColCNSPaciente, ColSexo,
	ColCodigoMunicipio, ColCID, ColIdade, ColQuantidade, ColNomePaciente, ColDataNascimento,
}

// IndividualOptional maps each optional BPA-I column to the value used when
// the column is absent or blank.
var IndividualOptional = map[string]string{
	ColCaraterAtendimento: "01",
	ColNumeroAutorizacao:  "",
	ColRaca:               "01",
	ColEtnia:              "",
	ColNacionalidade:      "010",
	ColServico:            "",
	ColClassificacao:      "",
	ColEquipeSeq:          "",
	ColEquipeArea:         "",
	ColCNPJ:               "",
	ColCEP:                "",
	ColCodigoLogradouro:   "",
	ColEndereco:           "",
	ColComplemento:        "",
	ColNumero:             "",
	ColBairro:             "",
	ColTelefone:           "",
	ColEmail:              "",
	ColINE:                "",
}
