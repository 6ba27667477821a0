package document

import (
	"strings"

	"github.com/ogurasousui/formation-docs/internal/core/formation"
)

const (
	newYorkCounty       = "Albany County"
	newYorkAgentAddress = "418 Broadway Ste Y, Albany, Albany County, NY 12207"
)

// NewYorkArticles はニューヨーク州事業会社法 402 条に基づく設立証書を組み立てます。
func NewYorkArticles(f formation.CompanyFormation) Document {
	return Document{
		Kind: KindNewYorkArticles,
		Title: []string{
			"CERTIFICATE OF INCORPORATION",
			"OF " + strings.ToUpper(f.CompanyName),
		},
		Subtitle: []string{"Under Section 402 of the Business Corporation Law"},
		Blocks: []Block{
			clause("FIRST: The name of this corporation is: " + f.CompanyName),
			clause("SECOND: The purpose of the corporation is to engage in any lawful act or activity for which " +
				"a corporation may be organized under the Business Corporation Law. The corporation is not formed " +
				"to engage in any act or activity requiring the consent or approval of any state official, department, " +
				"board, agency or other body without such consent or approval first being obtained."),
			clause("THIRD: The county, within this state, in which the office of the corporation is to be located is: " +
				newYorkCounty + "."),
			clause("FOURTH: The corporation shall have authority to issue one class of shares consisting of " +
				"1,000 common shares with $0.01 par value per share."),
			clause("FIFTH: The Secretary of State is designated as agent of the corporation upon whom process " +
				"against the corporation may be served. The post office address to which the Secretary of State " +
				"shall mail a copy of any process against the corporation served upon the Secretary of State by " +
				"personal delivery is: " + newYorkAgentAddress),
			signature("Incorporator:", signed(f.IncorporatorName), newYorkAgentAddress),
			signature("Filer's Name and Address:", signed(f.IncorporatorName), newYorkAgentAddress),
		},
		Metadata: Metadata{
			Title:   "Certificate of Incorporation of " + f.CompanyName,
			Subject: "New York Business Corporation Law Section 402",
			Author:  f.IncorporatorName,
		},
	}
}

// NewYorkLLCCertificate はニューヨーク州 LLC 法 203 条に基づく設立書を組み立てます。
func NewYorkLLCCertificate(f formation.CompanyFormation) Document {
	return Document{
		Kind: KindNewYorkLLCCertificate,
		Title: []string{
			"ARTICLES OF ORGANIZATION",
			"OF " + strings.ToUpper(f.CompanyName),
		},
		Subtitle: []string{"Under Section 203 of the Limited Liability Company Law"},
		Blocks: []Block{
			clause("FIRST: The name of the limited liability company is: " + f.CompanyName),
			clause("SECOND: The county, within this state, in which the office of the limited liability company " +
				"is to be located is: " + newYorkCounty + "."),
			clause("THIRD: The Secretary of State is designated as agent of the limited liability company upon whom " +
				"process against the limited liability company may be served. The post office address to which the " +
				"Secretary of State shall mail a copy of any process against the limited liability company served upon " +
				"the Secretary of State by personal delivery is: " + newYorkAgentAddress),
			signature("Organizer:", signed(f.IncorporatorName), newYorkAgentAddress),
			signature("Filer's Name and Address:", signed(f.IncorporatorName), newYorkAgentAddress),
		},
		Metadata: Metadata{
			Title:   "Articles of Organization of " + f.CompanyName,
			Subject: "New York Limited Liability Company Law Section 203",
			Author:  f.IncorporatorName,
		},
	}
}
