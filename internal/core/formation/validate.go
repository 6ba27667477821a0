package formation

import "strings"

// 入力マッピングのキー。
const (
	FieldCompanyName      = "company_name"
	FieldStateOfFormation = "state_of_formation"
	FieldCompanyType      = "company_type"
	FieldIncorporatorName = "incorporator_name"
)

// Input は検証前の生入力です。
type Input struct {
	CompanyName      string
	StateOfFormation string
	CompanyType      string
	IncorporatorName string
}

// Parse はフィールド名から生の値へのマッピングを検証し、正規化済みの CompanyFormation を返します。
// 存在しないキーは空文字列として扱います。
func Parse(fields map[string]string) (CompanyFormation, error) {
	return New(Input{
		CompanyName:      fields[FieldCompanyName],
		StateOfFormation: fields[FieldStateOfFormation],
		CompanyType:      fields[FieldCompanyType],
		IncorporatorName: fields[FieldIncorporatorName],
	})
}

// New は入力を検証して CompanyFormation を生成します。
// 不正な項目がひとつでもあれば、すべての項目エラーを含む *ValidationError を返します。
func New(in Input) (CompanyFormation, error) {
	var fieldErrs []FieldError

	name, err := normalizeName(in.CompanyName)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: FieldCompanyName, Value: in.CompanyName, Err: err})
	}

	state, err := normalizeJurisdiction(in.StateOfFormation)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: FieldStateOfFormation, Value: in.StateOfFormation, Err: err})
	}

	companyType, err := ParseCompanyType(in.CompanyType)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: FieldCompanyType, Value: in.CompanyType, Err: err})
	}

	incorporator, err := normalizeName(in.IncorporatorName)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: FieldIncorporatorName, Value: in.IncorporatorName, Err: err})
	}

	if len(fieldErrs) > 0 {
		return CompanyFormation{}, &ValidationError{Fields: fieldErrs}
	}

	return CompanyFormation{
		CompanyName:      name,
		StateOfFormation: state,
		CompanyType:      companyType,
		IncorporatorName: incorporator,
	}, nil
}

// ParseCompanyType は大文字小文字を区別せずに事業体種別を解釈します。
func ParseCompanyType(raw string) (CompanyType, error) {
	switch strings.ToLower(strings.Join(strings.Fields(raw), " ")) {
	case "corporation", "corp", "inc":
		return CompanyTypeCorporation, nil
	case "llc", "limited liability company":
		return CompanyTypeLLC, nil
	case "":
		return "", ErrEmptyField
	default:
		return "", ErrInvalidCompanyType
	}
}

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyField
	}
	return trimmed, nil
}

func normalizeJurisdiction(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", ErrEmptyField
	}
	if _, ok := jurisdictions[code]; !ok {
		return "", ErrInvalidJurisdiction
	}
	return code, nil
}
