package vniworkorder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/client"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
)

var ctx = context.Background()

func sampleOrder() payloads.VNIWorkOrder {
	return payloads.VNIWorkOrder{
		ID:          "7",
		Owner:       "jsmith",
		RequestedBy: "network-team",
		Project:     "edge-rollout",
		VNIName:     "vni-edge-01",
		CIDR:        "192.168.1.0/24",
		SubnetMask:  "255.255.255.0",
		Gateway:     "192.168.1.254",
		FirstIP:     "192.168.1.10",
		LastIP:      "192.168.1.20",
		NumberOfIPs: 11,
		Status:      lifecycle.StatusPending,
		Priority:    payloads.PriorityNormal,
	}
}

func setupTestServer(t *testing.T) (*httptest.Server, library.VNIWorkOrder) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/vni-workorders/" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			orders := []payloads.VNIWorkOrder{sampleOrder()}
			if r.URL.Query().Get("status") == "approved" {
				orders = nil
			}
			_ = json.NewEncoder(w).Encode(orders)

		case r.URL.Path == "/api/vni-workorders/" && r.Method == http.MethodPost:
			var order payloads.VNIWorkOrder
			_ = json.NewDecoder(r.Body).Decode(&order)
			order.ID = "8"
			order.Status = lifecycle.StatusPending
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(order)

		case r.URL.Path == "/api/vni-workorders/7" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(sampleOrder())

		case r.URL.Path == "/api/vni-workorders/7" && r.Method == http.MethodPut:
			var patch payloads.VNIWorkOrder
			_ = json.NewDecoder(r.Body).Decode(&patch)
			patch.ID = "7"
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(patch)

		case r.URL.Path == "/api/vni-workorders/7" && r.Method == http.MethodDelete:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "VNI work order deleted"})

		case r.URL.Path == "/api/vni-workorders/7/approve" && r.Method == http.MethodPost:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "VNI work order approved", "status": "approved",
			})

		case r.URL.Path == "/api/vni-workorders/7/reject" && r.Method == http.MethodPost:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "VNI work order rejected", "status": "rejected",
			})

		case r.URL.Path == "/api/vni-workorders/7/status" && r.Method == http.MethodPut:
			var body struct {
				Status string `json:"status"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Status == "" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid status"})
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Status updated", "status": body.Status})

		case r.URL.Path == "/api/vni-workorders/7/status" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "executing"})

		case r.URL.Path == "/api/vni-workorders/7/execute" && r.Method == http.MethodPost:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message":       "VNI provisioning started",
				"status":        "executing",
				"vni_name":      "vni-edge-01",
				"vni_id":        "73001",
				"execution_log": "segment created",
			})

		case r.URL.Path == "/api/vni-workorders/7/log" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"execution_log": "segment created\nip pool bound",
			})

		case r.URL.Path == "/api/vni-workorders/7/export-excel" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", `attachment; filename="vni_workorder_7.xlsx"`)
			_, _ = w.Write([]byte("spreadsheet-bytes"))

		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "VNI work order not found"})
		}
	}))

	baseURL, err := url.Parse(server.URL + "/api")
	require.NoError(t, err)

	log, err := logger.New(false, nil, nil)
	require.NoError(t, err)

	restClient := &client.Client{
		HttpClient: http.DefaultClient,
		BaseURL:    baseURL,
	}

	return server, New(restClient, log)
}

func TestGet(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	order, err := svc.Get(ctx, "7")

	require.NoError(t, err)
	assert.Equal(t, "vni-edge-01", order.VNIName)
	assert.Equal(t, 11, order.NumberOfIPs)
	assert.Equal(t, lifecycle.StatusPending, order.Status)
}

func TestGetNotFound(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	_, err := svc.Get(ctx, "999")

	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestList(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	orders, err := svc.List(ctx, 0, "")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "vni-edge-01", orders[0].VNIName)
}

func TestListStatusFilter(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	orders, err := svc.List(ctx, 0, lifecycle.StatusApproved)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreate(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	draft := sampleOrder()
	draft.ID = ""

	created, err := svc.Create(ctx, &draft)

	require.NoError(t, err)
	assert.Equal(t, payloads.ID("8"), created.ID)
	assert.Equal(t, lifecycle.StatusPending, created.Status)
}

func TestUpdate(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	patch := sampleOrder()
	patch.LastIP = "192.168.1.30"
	patch.NumberOfIPs = 21

	updated, err := svc.Update(ctx, "7", &patch)

	require.NoError(t, err)
	assert.Equal(t, 21, updated.NumberOfIPs)
}

func TestTransitions(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	assert.NoError(t, svc.Approve(ctx, "7"))
	assert.NoError(t, svc.Reject(ctx, "7"))
	assert.Error(t, svc.Approve(ctx, "999"))
}

func TestUpdateStatus(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	assert.NoError(t, svc.UpdateStatus(ctx, "7", lifecycle.StatusDraft))
}

func TestExecute(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	result, err := svc.Execute(ctx, "7")

	require.NoError(t, err)
	assert.Equal(t, "VNI provisioning started", result.Message)
	assert.Equal(t, lifecycle.StatusExecuting, result.Status)
	assert.Equal(t, "vni-edge-01", result.VNIName)
	assert.Equal(t, "73001", result.VNIID)
	assert.Equal(t, "segment created", result.ExecutionLog)
}

func TestExecutionLog(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	log, err := svc.ExecutionLog(ctx, "7")

	require.NoError(t, err)
	assert.Equal(t, "segment created\nip pool bound", log)
}

func TestGetStatus(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	status, err := svc.GetStatus(ctx, "7")

	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusExecuting, status)
}

func TestExportExcel(t *testing.T) {
	server, svc := setupTestServer(t)
	defer server.Close()

	data, filename, err := svc.ExportExcel(ctx, "7")

	require.NoError(t, err)
	assert.Equal(t, "vni_workorder_7.xlsx", filename)
	assert.Equal(t, []byte("spreadsheet-bytes"), data)
}
