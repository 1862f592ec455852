package report

const (
	ModePinpadRanking = "pinpad_ranking"
	ModeVersion       = "version"
)

const (
	MsgNoData       = "Nenhum dado encontrado com os filtros selecionados."
	MsgNoPieData    = "Nenhum dado encontrado para gerar o gráfico de pizza."
	MsgNoRegionData = "Nenhum dado encontrado para o modelo de POS %s."
)

type Filter struct {
	Version           string   `json:"version"`
	DeviceIDs         []string `json:"device_ids"`
	ShowPinpadRanking bool     `json:"show_pinpad_ranking"`
	POSModel          string   `json:"pos_model"`
}

type Count struct {
	Key   string `json:"key"`
	Total int    `json:"total"`
}

type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Delta string `json:"delta,omitempty"`
}

type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type BarChart struct {
	Title  string `json:"title"`
	XTitle string `json:"x_title"`
	YTitle string `json:"y_title"`
	Bars   []Bar  `json:"bars"`
}

type Slice struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

type PieChart struct {
	Title  string  `json:"title"`
	Slices []Slice `json:"slices"`
}

type PinpadView struct {
	Ranking []Count  `json:"ranking"`
	Metrics []Metric `json:"metrics"`
	Chart   BarChart `json:"chart"`
}

type VersionView struct {
	DeviceCounts  []Count   `json:"device_counts"`
	Metrics       []Metric  `json:"metrics"`
	Total         *Metric   `json:"total,omitempty"`
	Message       string    `json:"message,omitempty"`
	POSModels     []string  `json:"pos_models"`
	POSModel      string    `json:"pos_model"`
	RegionRanking []Count   `json:"region_ranking"`
	Pie           *PieChart `json:"pie,omitempty"`
	PieMessage    string    `json:"pie_message,omitempty"`
	RegionChart   *BarChart `json:"region_chart,omitempty"`
	RegionMessage string    `json:"region_message,omitempty"`
}

type Sidebar struct {
	Versions        []string `json:"versions"`
	DeviceIDs       []string `json:"device_ids"`
	POSModels       []string `json:"pos_models"`
	Version         string   `json:"version"`
	VersionFeatures []string `json:"version_features,omitempty"`
}

type View struct {
	Mode    string       `json:"mode"`
	Filter  Filter       `json:"filter"`
	Sidebar Sidebar      `json:"sidebar"`
	Pinpad  *PinpadView  `json:"pinpad,omitempty"`
	Version *VersionView `json:"version,omitempty"`
	Banner  string       `json:"banner,omitempty"`
	Footer  string       `json:"footer,omitempty"`
}
