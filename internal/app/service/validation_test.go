package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space_catalog/internal/app/ds"
)

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int { return &v }
func int64Ptr(v int64) *int64 { return &v }
func floatPtr(v float64) *float64 { return &v }
func typePtr(v ds.ShipType) *ds.ShipType { return &v }

func yearMillis(year int) int64 {
	return time.Date(year, time.June, 15, 0, 0, 0, 0, time.Local).UnixMilli()
}

func validCreateRequest() ds.CreateShipRequest {
	return ds.CreateShipRequest{
		Name:     strPtr("Liberty"),
		Planet:   strPtr("Earth"),
		ShipType: typePtr(ds.ShipTypeTransport),
		ProdDate: int64Ptr(yearMillis(3019)),
		Speed:    floatPtr(0.5),
		CrewSize: intPtr(100),
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *ds.CreateShipRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(req *ds.CreateShipRequest) {}},
		{name: "isUsed present", mutate: func(req *ds.CreateShipRequest) { req.IsUsed = boolPtr(true) }},
		{name: "missing name", mutate: func(req *ds.CreateShipRequest) { req.Name = nil }, wantErr: true},
		{name: "empty name", mutate: func(req *ds.CreateShipRequest) { req.Name = strPtr("") }, wantErr: true},
		{name: "name of 50 chars", mutate: func(req *ds.CreateShipRequest) { req.Name = strPtr(strings.Repeat("a", 50)) }},
		{name: "name of 51 chars", mutate: func(req *ds.CreateShipRequest) { req.Name = strPtr(strings.Repeat("a", 51)) }, wantErr: true},
		{name: "missing planet", mutate: func(req *ds.CreateShipRequest) { req.Planet = nil }, wantErr: true},
		{name: "empty planet", mutate: func(req *ds.CreateShipRequest) { req.Planet = strPtr("") }, wantErr: true},
		{name: "planet of 50 chars", mutate: func(req *ds.CreateShipRequest) { req.Planet = strPtr(strings.Repeat("p", 50)) }},
		{name: "missing ship type", mutate: func(req *ds.CreateShipRequest) { req.ShipType = nil }, wantErr: true},
		{name: "unknown ship type", mutate: func(req *ds.CreateShipRequest) { req.ShipType = typePtr(ds.ShipType("CRUISER")) }, wantErr: true},
		{name: "missing prod date", mutate: func(req *ds.CreateShipRequest) { req.ProdDate = nil }, wantErr: true},
		{name: "negative prod date", mutate: func(req *ds.CreateShipRequest) { req.ProdDate = int64Ptr(-1) }, wantErr: true},
		{name: "year 2800 accepted", mutate: func(req *ds.CreateShipRequest) { req.ProdDate = int64Ptr(yearMillis(2800)) }},
		{name: "year 3019 accepted", mutate: func(req *ds.CreateShipRequest) { req.ProdDate = int64Ptr(yearMillis(3019)) }},
		{name: "year 2799 rejected", mutate: func(req *ds.CreateShipRequest) { req.ProdDate = int64Ptr(yearMillis(2799)) }, wantErr: true},
		{name: "year 3020 rejected", mutate: func(req *ds.CreateShipRequest) { req.ProdDate = int64Ptr(yearMillis(3020)) }, wantErr: true},
		{name: "missing speed", mutate: func(req *ds.CreateShipRequest) { req.Speed = nil }, wantErr: true},
		{name: "speed 0.01 accepted", mutate: func(req *ds.CreateShipRequest) { req.Speed = floatPtr(0.01) }},
		{name: "speed 0.99 accepted", mutate: func(req *ds.CreateShipRequest) { req.Speed = floatPtr(0.99) }},
		{name: "speed 0.00 rejected", mutate: func(req *ds.CreateShipRequest) { req.Speed = floatPtr(0.00) }, wantErr: true},
		{name: "speed 1.00 rejected", mutate: func(req *ds.CreateShipRequest) { req.Speed = floatPtr(1.00) }, wantErr: true},
		{name: "missing crew size", mutate: func(req *ds.CreateShipRequest) { req.CrewSize = nil }, wantErr: true},
		{name: "crew size 1 accepted", mutate: func(req *ds.CreateShipRequest) { req.CrewSize = intPtr(1) }},
		{name: "crew size 9999 accepted", mutate: func(req *ds.CreateShipRequest) { req.CrewSize = intPtr(9999) }},
		{name: "crew size 0 rejected", mutate: func(req *ds.CreateShipRequest) { req.CrewSize = intPtr(0) }, wantErr: true},
		{name: "crew size 10000 rejected", mutate: func(req *ds.CreateShipRequest) { req.CrewSize = intPtr(10000) }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := ValidateCreate(req)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateCreate_ReturnsValidationError(t *testing.T) {
	req := validCreateRequest()
	req.Speed = floatPtr(1.5)

	err := ValidateCreate(req)
	require.Error(t, err)

	var vErr *ds.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Speed", vErr.Field)
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		req     ds.UpdateShipRequest
		wantErr bool
	}{
		{name: "empty request is valid", id: 1},
		{name: "zero id rejected", id: 0, wantErr: true},
		{name: "negative id rejected", id: -5, wantErr: true},
		{name: "valid name", id: 1, req: ds.UpdateShipRequest{Name: strPtr("Falcon")}},
		{name: "explicitly empty name rejected", id: 1, req: ds.UpdateShipRequest{Name: strPtr("")}, wantErr: true},
		{name: "name of 51 chars rejected", id: 1, req: ds.UpdateShipRequest{Name: strPtr(strings.Repeat("a", 51))}, wantErr: true},
		{name: "explicitly empty planet rejected", id: 1, req: ds.UpdateShipRequest{Planet: strPtr("")}, wantErr: true},
		{name: "unknown ship type rejected", id: 1, req: ds.UpdateShipRequest{ShipType: typePtr(ds.ShipType("JEDI"))}, wantErr: true},
		{name: "valid ship type", id: 1, req: ds.UpdateShipRequest{ShipType: typePtr(ds.ShipTypeMerchant)}},
		{name: "negative prod date rejected", id: 1, req: ds.UpdateShipRequest{ProdDate: int64Ptr(-1)}, wantErr: true},
		{name: "year 2799 rejected", id: 1, req: ds.UpdateShipRequest{ProdDate: int64Ptr(yearMillis(2799))}, wantErr: true},
		{name: "year 3020 rejected", id: 1, req: ds.UpdateShipRequest{ProdDate: int64Ptr(yearMillis(3020))}, wantErr: true},
		{name: "year 2800 accepted", id: 1, req: ds.UpdateShipRequest{ProdDate: int64Ptr(yearMillis(2800))}},
		{name: "speed below range rejected", id: 1, req: ds.UpdateShipRequest{Speed: floatPtr(0.001)}, wantErr: true},
		{name: "speed above range rejected", id: 1, req: ds.UpdateShipRequest{Speed: floatPtr(1.0)}, wantErr: true},
		{name: "speed boundary accepted", id: 1, req: ds.UpdateShipRequest{Speed: floatPtr(0.99)}},
		{name: "crew size 0 rejected", id: 1, req: ds.UpdateShipRequest{CrewSize: intPtr(0)}, wantErr: true},
		{name: "crew size 10000 rejected", id: 1, req: ds.UpdateShipRequest{CrewSize: intPtr(10000)}, wantErr: true},
		{name: "crew size boundary accepted", id: 1, req: ds.UpdateShipRequest{CrewSize: intPtr(9999)}},
		{name: "isUsed alone is valid", id: 1, req: ds.UpdateShipRequest{IsUsed: boolPtr(true)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.id, tt.req)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
