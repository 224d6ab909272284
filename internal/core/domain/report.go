package domain

// Branding is the optional header block of a generated report.
type Branding struct {
	Logo     []byte
	LogoType string // image type understood by the PDF writer, e.g. "PNG"
	Subtitle string
	Tagline  string
}

// ReportImage is a rasterised chart placed in the report.
type ReportImage struct {
	Title string
	Path  string
}

// ReportTable is a titled grid; Header is rendered with the header style.
type ReportTable struct {
	Title  string
	Header []string
	Rows   [][]string
}

// ReportDocument is everything the report writer lays out, in order.
type ReportDocument struct {
	Branding *Branding
	Title    string
	Images   []ReportImage
	Tables   []ReportTable
}

// ReportFileName is the download name of the PDF report for a vessel.
func ReportFileName(mmsi string) string {
	return "Ship_Report_MMSI_" + mmsi + ".pdf"
}

// CodesFileName is the download name of the decoded status CSV for a vessel.
func CodesFileName(mmsi string) string {
	return "Ship_Report_MMSI_" + mmsi + ".csv"
}

// DataFileName is the download name of the filtered track CSV for a vessel.
func DataFileName(mmsi string) string {
	return "MMSI_" + mmsi + "_data.csv"
}
