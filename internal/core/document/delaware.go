package document

import "github.com/ogurasousui/formation-docs/internal/core/formation"

const (
	delawareRegisteredOffice = "1209 Orange Street, in the City of Wilmington, County of New Castle, Zip Code 19801"
	delawareRegisteredAgent  = "The Corporation Trust Company"
)

// DelawareArticles はデラウェア州の会社設立証書 (Certificate of Incorporation) を組み立てます。
func DelawareArticles(f formation.CompanyFormation) Document {
	return Document{
		Kind:  KindDelawareArticles,
		Title: []string{"CERTIFICATE OF INCORPORATION"},
		Subtitle: []string{
			"OF",
			f.CompanyName,
		},
		Blocks: []Block{
			clause("FIRST: The name of this corporation is: " + f.CompanyName),
			clause("SECOND: Its registered office in the State of Delaware is to be located at " +
				delawareRegisteredOffice + ". The registered agent in charge thereof is " + delawareRegisteredAgent + "."),
			clause("THIRD: The purpose of the corporation is to engage in any lawful act or activity " +
				"for which corporations may be organized under the General Corporation Law of the State of Delaware."),
			clause("FOURTH: The total number of shares of stock which this corporation is authorized to issue is " +
				"1,000 shares of Common Stock with a par value of $0.01 per share."),
			clause("IN WITNESS WHEREOF, the undersigned, being the incorporator hereinbefore named, " +
				"has executed this Certificate of Incorporation and does hereby affirm that the facts stated herein are true."),
			signature(signed(f.IncorporatorName), f.IncorporatorName+", Incorporator"),
		},
		Metadata: Metadata{
			Title:   "Certificate of Incorporation of " + f.CompanyName,
			Subject: "Delaware General Corporation Law",
			Author:  f.IncorporatorName,
		},
	}
}
