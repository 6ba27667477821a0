package document

import "github.com/ogurasousui/formation-docs/internal/core/formation"

const (
	californiaAgentName    = "C T Corporation System"
	californiaAgentAddress = "330 N Brand Blvd, Suite 700, Glendale, CA 91203"
)

// CaliforniaArticles はカリフォルニア州の株式会社定款 (Articles of Incorporation) を組み立てます。
func CaliforniaArticles(f formation.CompanyFormation) Document {
	return Document{
		Kind:     KindCaliforniaArticles,
		Title:    []string{"ARTICLES OF INCORPORATION"},
		Subtitle: []string{"OF", f.CompanyName},
		Blocks: []Block{
			clause("ARTICLE I: The name of this corporation is: " + f.CompanyName),
			clause("ARTICLE II: The purpose of the corporation is to engage in any lawful act or activity " +
				"for which a corporation may be organized under the General Corporation Law of California " +
				"other than the banking business, the trust company business or the practice of a profession " +
				"permitted to be incorporated by the California Corporations Code."),
			clause("ARTICLE III: The name and address in California of the corporation's initial agent for service of process is: " +
				californiaAgentName + ", " + californiaAgentAddress),
			signature(signed(f.IncorporatorName), f.IncorporatorName+", Incorporator"),
		},
		Metadata: Metadata{
			Title:   "Articles of Incorporation of " + f.CompanyName,
			Subject: "California General Corporation Law",
			Author:  f.IncorporatorName,
		},
	}
}

// CaliforniaLLCCertificate はカリフォルニア州の LLC 設立書 (Articles of Organization) を組み立てます。
func CaliforniaLLCCertificate(f formation.CompanyFormation) Document {
	return Document{
		Kind:     KindCaliforniaLLCCertificate,
		Title:    []string{"ARTICLES OF ORGANIZATION"},
		Subtitle: []string{"OF", f.CompanyName},
		Blocks: []Block{
			clause("ARTICLE I: The name of the limited liability company is: " + f.CompanyName),
			clause("ARTICLE II: The purpose of the limited liability company is to engage in any lawful act or activity " +
				"for which a limited liability company may be organized under the California Revised Uniform " +
				"Limited Liability Company Act."),
			clause("ARTICLE III: The name and address in California of the limited liability company's initial agent for service of process is: " +
				californiaAgentName + ", " + californiaAgentAddress),
			signature(signed(f.IncorporatorName), f.IncorporatorName+", Organizer"),
		},
		Metadata: Metadata{
			Title:   "Articles of Organization of " + f.CompanyName,
			Subject: "California Revised Uniform Limited Liability Company Act",
			Author:  f.IncorporatorName,
		},
	}
}
