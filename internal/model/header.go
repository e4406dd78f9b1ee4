package model

import "strconv"

// Header describes the submission batch. It is encoded exactly once, as the
// first line of the file.
type Header struct {
	YearMonth   string
	TotalLines  string
	TotalSheets string
	OrgName     string
	OrgAcronym  string
	CGCCPF      string
	DestName    string
	DestType    string
	Version     string
}

// HeaderFromRow builds a Header from the first row of the header source.
func HeaderFromRow(r Row) (Header, error) {
	if err := r.Require("header", HeaderRequired); err != nil {
		return Header{}, err
	}
	return Header{
		YearMonth:   r[ColYearMonth],
		TotalLines:  r.Get(ColTotalLines, "1"),
		TotalSheets: r.Get(ColTotalSheets, "1"),
		OrgName:     r[ColOrgName],
		OrgAcronym:  r[ColOrgAcronym],
		CGCCPF:      r[ColCGCCPF],
		DestName:    r[ColDestName],
		DestType:    r[ColDestType],
		Version:     r.Get(ColVersion, "1.0.0"),
	}, nil
}

// WithTotals returns a copy of h whose line and sheet counts are n. One
// detail record per sheet is assumed.
func (h Header) WithTotals(n int) Header {
	h.TotalLines = strconv.Itoa(n)
	h.TotalSheets = strconv.Itoa(n)
	return h
}

// Fields returns the header values keyed by column name.
func (h Header) Fields() map[string]string {
	return map[string]string{
		ColYearMonth:   h.YearMonth,
		ColTotalLines:  h.TotalLines,
		ColTotalSheets: h.TotalSheets,
		ColOrgName:     h.OrgName,
		ColOrgAcronym:  h.OrgAcronym,
		ColCGCCPF:      h.CGCCPF,
		ColDestName:    h.DestName,
		ColDestType:    h.DestType,
		ColVersion:     h.Version,
	}
}
