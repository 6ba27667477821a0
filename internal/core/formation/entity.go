package formation

import (
	"sort"
	"strings"
)

// CompanyType は設立する事業体の種別を表します。
type CompanyType string

const (
	CompanyTypeCorporation CompanyType = "corporation"
	CompanyTypeLLC         CompanyType = "LLC"
)

// CompanyFormation は設立書類 1 件分の検証済み入力です。
// New / Parse 以外で生成された値は検証済みとみなしません。
type CompanyFormation struct {
	CompanyName      string
	StateOfFormation string
	CompanyType      CompanyType
	IncorporatorName string
}

// 50 州 + DC + 海外領土 (PR, GU, VI, AS, MP)。
var jurisdictions = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {}, "PR": {}, "GU": {}, "VI": {}, "AS": {}, "MP": {},
}

// Jurisdictions は受け付ける管轄コードを昇順で返します。
func Jurisdictions() []string {
	codes := make([]string, 0, len(jurisdictions))
	for code := range jurisdictions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsJurisdiction は大文字化したコードが受け付け対象に含まれるかを返します。
func IsJurisdiction(code string) bool {
	_, ok := jurisdictions[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// IsLLC は LLC かどうかを返します。
func (f CompanyFormation) IsLLC() bool {
	return f.CompanyType == CompanyTypeLLC
}
