package dto

type PortResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Region  string `json:"region"`
}

type ListPortsResponse struct {
	Ports []PortResponse `json:"ports"`
}

type WarehouseResponse struct {
	Code            string `json:"code"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Region          string `json:"region"`
	IsRemote        bool   `json:"is_remote"`
	CongestionLevel string `json:"congestion_level"`
	AvgWaitTimeMins int    `json:"avg_wait_time_mins"`
}

type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type CongestionResponse struct {
	CriticalCount int                 `json:"critical_count"`
	Warehouses    []WarehouseResponse `json:"warehouses"`
}
