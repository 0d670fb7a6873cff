package export

import "encoding/xml"

// GEXF 1.2draft namespaces.
const (
	gexfNamespace    = "http://www.gexf.net/1.2draft"
	gexfVizNamespace = "http://www.gexf.net/1.2draft/viz"
	gexfVersion      = "1.2"
)

// Node attribute ids and titles.
const (
	attrName      = "0"
	attrSector    = "1"
	attrMarketCap = "2"

	titleName      = "name"
	titleSector    = "sector"
	titleMarketCap = "market_cap"
)

type gexfDoc struct {
	XMLName  xml.Name  `xml:"gexf"`
	XMLNS    string    `xml:"xmlns,attr,omitempty"`
	XMLNSViz string    `xml:"xmlns:viz,attr,omitempty"`
	Version  string    `xml:"version,attr"`
	Meta     *gexfMeta `xml:"meta,omitempty"`
	Graph    gexfGraph `xml:"graph"`
}

type gexfMeta struct {
	LastModified string `xml:"lastmodifieddate,attr,omitempty"`
	Creator      string `xml:"creator,omitempty"`
	Description  string `xml:"description,omitempty"`
}

type gexfGraph struct {
	DefaultEdgeType string           `xml:"defaultedgetype,attr"`
	Mode            string           `xml:"mode,attr,omitempty"`
	Attributes      []gexfAttributes `xml:"attributes"`
	Nodes           []gexfNode       `xml:"nodes>node"`
	Edges           []gexfEdge       `xml:"edges>edge"`
}

type gexfAttributes struct {
	Class      string          `xml:"class,attr"`
	Mode       string          `xml:"mode,attr,omitempty"`
	Attributes []gexfAttribute `xml:"attribute"`
}

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// gexfNode carries the viz elements twice: encoding/xml writes prefixed
// names verbatim but matches namespaced input by local name only.
type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr,omitempty"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
	VizColor  *gexfColor     `xml:"viz:color,omitempty"`
	VizPos    *gexfPosition  `xml:"viz:position,omitempty"`
	Color     *gexfColor     `xml:"color,omitempty"`
	Position  *gexfPosition  `xml:"position,omitempty"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfColor struct {
	R uint8 `xml:"r,attr"`
	G uint8 `xml:"g,attr"`
	B uint8 `xml:"b,attr"`
}

type gexfPosition struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	Z float64 `xml:"z,attr"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}
