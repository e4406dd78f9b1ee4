// Package bpa encodes BPA records into the fixed-width lines of the national
// ambulatory production file.
package bpa

import (
	fw "github.com/gyeh/bpagen/internal/fixedwidth"
	"github.com/gyeh/bpagen/internal/model"
)

const (
	HeaderType       = "01"
	ConsolidatedType = "02"
	IndividualType   = "03"

	// LineEnding terminates every record line.
	LineEnding = "\r\n"

	headerMarker = "#BPA#"
	controlCode  = "1111"
	origin       = "EXT"
)

// HeaderLayout is the "01" record. dest_type is copied verbatim, so the line
// is HeaderLayout.Width() plus len(dest_type) characters.
var HeaderLayout = fw.Layout{
	{Name: "record_type", Kind: fw.Literal, Value: HeaderType},
	{Name: "marker", Kind: fw.Literal, Value: headerMarker},
	{Name: model.ColYearMonth, Width: 6, Kind: fw.Text},
	{Name: model.ColTotalLines, Width: 6, Kind: fw.Numeric},
	{Name: model.ColTotalSheets, Width: 6, Kind: fw.Numeric},
	{Name: "control", Kind: fw.Literal, Value: controlCode},
	{Name: model.ColOrgName, Width: 30, Kind: fw.Text},
	{Name: model.ColOrgAcronym, Width: 6, Kind: fw.Text},
	{Name: model.ColCGCCPF, Width: 14, Kind: fw.Numeric},
	{Name: model.ColDestName, Width: 40, Kind: fw.Text},
	{Name: model.ColDestType, Kind: fw.Raw},
	{Name: model.ColVersion, Width: 10, Kind: fw.Text},
}

// ConsolidatedLayout is the "02" (BPA-C) record, 48 characters.
var ConsolidatedLayout = fw.Layout{
	{Name: "record_type", Kind: fw.Literal, Value: ConsolidatedType},
	{Name: model.ColCNES, Width: 7, Kind: fw.Numeric},
	{Name: model.ColCompetencia, Width: 6, Kind: fw.Numeric},
	{Name: model.ColCBO, Width: 6, Kind: fw.Text},
	{Name: model.ColFolha, Width: 3, Kind: fw.Numeric},
	{Name: model.ColSequencial, Width: 2, Kind: fw.Numeric},
	{Name: model.ColProcedimento, Width: 10, Kind: fw.Numeric},
	{Name: model.ColIdade, Width: 3, Kind: fw.Numeric},
	{Name: model.ColQuantidade, Width: 6, Kind: fw.Numeric},
	{Name: "origin", Kind: fw.Literal, Value: origin},
}

// IndividualLayout is the "03" (BPA-I) record, 338 characters.
var IndividualLayout = fw.Layout{
	{Name: "record_type", Kind: fw.Literal, Value: IndividualType},
	{Name: model.ColCNES, Width: 7, Kind: fw.Numeric},
	{Name: model.ColCompetencia, Width: 6, Kind: fw.Numeric},
	{Name: model.ColCNSProfissional, Width: 15, Kind: fw.Numeric},
	{Name: model.ColCBO, Width: 6, Kind: fw.Text},
	{Name: model.ColDataAtendimento, Width: 8, Kind: fw.Numeric},
	{Name: model.ColFolha, Width: 3, Kind: fw.Numeric},
	{Name: model.ColSequencial, Width: 2, Kind: fw.Numeric},
	{Name: model.ColProcedimento, Width: 10, Kind: fw.Numeric},
	{Name: model.ColCNSPaciente, Width: 15, Kind: fw.Numeric},
	{Name: model.ColSexo, Width: 1, Kind: fw.UpperText},
	{Name: model.ColCodigoMunicipio, Width: 6, Kind: fw.Numeric},
	{Name: model.ColCID, Width: 4, Kind: fw.Text},
	{Name: model.ColIdade, Width: 3, Kind: fw.Numeric},
	{Name: model.ColQuantidade, Width: 6, Kind: fw.Numeric},
	{Name: model.ColCaraterAtendimento, Width: 2, Kind: fw.Numeric},
	{Name: model.ColNumeroAutorizacao, Width: 13, Kind: fw.Text},
	{Name: "origin", Kind: fw.Literal, Value: origin},
	{Name: model.ColNomePaciente, Width: 30, Kind: fw.Text},
	{Name: model.ColDataNascimento, Width: 8, Kind: fw.Numeric},
	{Name: model.ColRaca, Width: 2, Kind: fw.Numeric},
	{Name: model.ColEtnia, Width: 4, Kind: fw.Text},
	{Name: model.ColNacionalidade, Width: 3, Kind: fw.Numeric},
	{Name: model.ColServico, Width: 3, Kind: fw.Text},
	{Name: model.ColClassificacao, Width: 3, Kind: fw.Text},
	{Name: model.ColEquipeSeq, Width: 8, Kind: fw.Text},
	{Name: model.ColEquipeArea, Width: 4, Kind: fw.Text},
	{Name: model.ColCNPJ, Width: 14, Kind: fw.Text},
	{Name: model.ColCEP, Width: 8, Kind: fw.Text},
	{Name: model.ColCodigoLogradouro, Width: 3, Kind: fw.Text},
	{Name: model.ColEndereco, Width: 30, Kind: fw.Text},
	{Name: model.ColComplemento, Width: 10, Kind: fw.Text},
	{Name: model.ColNumero, Width: 5, Kind: fw.Text},
	{Name: model.ColBairro, Width: 30, Kind: fw.Text},
	{Name: model.ColTelefone, Width: 11, Kind: fw.Text},
	{Name: model.ColEmail, Width: 40, Kind: fw.Text},
	{Name: model.ColINE, Width: 10, Kind: fw.Text},
}

// DetailLayout returns the detail layout emitted in mode m.
func DetailLayout(m model.Mode) fw.Layout {
	if m.Name == model.Individualized.Name {
		return IndividualLayout
	}
	return ConsolidatedLayout
}
