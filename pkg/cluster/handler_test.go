package cluster

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mce-sre/cluster-generator/internal/errdef"
	"github.com/mce-sre/cluster-generator/internal/handler"
	"github.com/mce-sre/cluster-generator/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handler.RegisterValidation(); err != nil {
		log.Fatal(err)
	}
	os.Exit(m.Run())
}

type mockGenerationService struct{ mock.Mock }

func (m *mockGenerationService) Assemble(input GenerationInput) (model.ClusterDescriptor, error) {
	called := m.Called(input)
	descriptor, _ := called.Get(0).(model.ClusterDescriptor)
	return descriptor, called.Error(1)
}

func (m *mockGenerationService) Generate(ctx context.Context, input GenerationInput) (model.Cluster, error) {
	called := m.Called(ctx, input)
	cluster, _ := called.Get(0).(model.Cluster)
	return cluster, called.Error(1)
}

func (m *mockGenerationService) Find(ctx context.Context, id uint) (model.Cluster, error) {
	called := m.Called(ctx, id)
	cluster, _ := called.Get(0).(model.Cluster)
	return cluster, called.Error(1)
}

func (m *mockGenerationService) FindAll(ctx context.Context) ([]model.Cluster, error) {
	called := m.Called(ctx)
	clusters, _ := called.Get(0).([]model.Cluster)
	return clusters, called.Error(1)
}

func (m *mockGenerationService) Delete(ctx context.Context, id uint) error {
	called := m.Called(ctx, id)
	return called.Error(0)
}

func newTestContext(t *testing.T, method string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	request, err := http.NewRequest(method, "/", reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	c.Request = request
	return c, recorder
}

func standardRequestBody() GenerateClusterRequest {
	return GenerateClusterRequest{
		ClusterName: "test-cluster",
		Site:        "dc-1",
		NodePools: []NodePoolRequestBody{
			{Vendor: "dell", NumberOfNodes: 3, InfraEnvName: "dell-prod"},
		},
	}
}

func TestHandlerPreview(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		service := &mockGenerationService{}
		expectedInput := GenerationInput{
			ClusterName: "test-cluster",
			Site:        "dc-1",
			DNSDomain:   "test.example.com",
			OCPVersion:  "4.16",
			MaxPods:     MaxPodsStandard,
			NodePools: []NodePoolRequest{
				{Vendor: "dell", NumberOfNodes: 3, InfraEnvName: "dell-prod"},
			},
		}
		descriptor := model.ClusterDescriptor{
			ClusterName: "test-cluster",
			NodePools:   []model.NodePool{{Name: "test-cluster-dell-nodepool"}},
		}
		service.On("Assemble", expectedInput).Return(descriptor, nil)
		clusterHandler := NewHandler(testCatalog(t), service)

		c, recorder := newTestContext(t, http.MethodPost, standardRequestBody())
		clusterHandler.Preview(c)

		require.Empty(t, c.Errors)
		require.Equal(t, http.StatusOK, recorder.Code)
		var response PreviewClusterResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "test-cluster", response.ClusterName)
		assert.Equal(t, "4.16", response.OCPVersion)
		assert.Equal(t, 1, response.NodePoolCount)
		assert.Equal(t, []string{"dell"}, response.VendorsUsed)
		assert.Contains(t, response.YAMLContent, "clusterName: test-cluster")
		service.AssertExpectations(t)
	})

	t.Run("HighDensityForcesVarLibContainers", func(t *testing.T) {
		service := &mockGenerationService{}
		service.On("Assemble", mock.MatchedBy(func(input GenerationInput) bool {
			return input.MaxPods == MaxPodsHighDensity && input.IncludeVarLibContainers
		})).Return(model.ClusterDescriptor{ClusterName: "test-cluster"}, nil)
		clusterHandler := NewHandler(testCatalog(t), service)

		body := standardRequestBody()
		body.MaxPods = MaxPodsHighDensity
		c, recorder := newTestContext(t, http.MethodPost, body)
		clusterHandler.Preview(c)

		require.Empty(t, c.Errors)
		require.Equal(t, http.StatusOK, recorder.Code)
		service.AssertExpectations(t)
	})

	t.Run("UnknownVendor", func(t *testing.T) {
		service := &mockGenerationService{}
		service.On("Assemble", mock.Anything).Return(model.ClusterDescriptor{}, NewUnknownVendor("acme"))
		clusterHandler := NewHandler(testCatalog(t), service)

		body := standardRequestBody()
		body.NodePools[0].Vendor = "acme"
		c, _ := newTestContext(t, http.MethodPost, body)
		clusterHandler.Preview(c)

		require.Len(t, c.Errors, 1)
		assert.True(t, errdef.IsBadRequest(c.Errors[0].Err))
		assert.ErrorContains(t, c.Errors[0].Err, "acme")
	})

	t.Run("InvalidClusterName", func(t *testing.T) {
		service := &mockGenerationService{}
		clusterHandler := NewHandler(testCatalog(t), service)

		body := standardRequestBody()
		body.ClusterName = "Not_A_Label"
		c, _ := newTestContext(t, http.MethodPost, body)
		clusterHandler.Preview(c)

		require.Len(t, c.Errors, 1)
		assert.True(t, errdef.IsBadRequest(c.Errors[0].Err))
		service.AssertNotCalled(t, "Assemble", mock.Anything)
	})

	t.Run("MissingNodePools", func(t *testing.T) {
		service := &mockGenerationService{}
		clusterHandler := NewHandler(testCatalog(t), service)

		body := standardRequestBody()
		body.NodePools = nil
		c, _ := newTestContext(t, http.MethodPost, body)
		clusterHandler.Preview(c)

		require.Len(t, c.Errors, 1)
		assert.True(t, errdef.IsBadRequest(c.Errors[0].Err))
		service.AssertNotCalled(t, "Assemble", mock.Anything)
	})

	t.Run("UnsupportedMediaType", func(t *testing.T) {
		service := &mockGenerationService{}
		clusterHandler := NewHandler(testCatalog(t), service)

		c, _ := newTestContext(t, http.MethodPost, standardRequestBody())
		c.Request.Header.Set("Content-Type", "text/plain")
		clusterHandler.Preview(c)

		require.Len(t, c.Errors, 1)
		assert.True(t, errdef.IsUnsupportedMediaType(c.Errors[0].Err))
	})
}

func TestHandlerGenerate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		service := &mockGenerationService{}
		record := model.Cluster{
			Name:          "test-cluster",
			Site:          "dc-1",
			OCPVersion:    "4.16",
			Path:          "clusters/dc-1/test-cluster.yaml",
			Configuration: []byte("clusterName: test-cluster\n"),
		}
		record.ID = 1
		service.On("Generate", mock.Anything, mock.MatchedBy(func(input GenerationInput) bool {
			return input.ClusterName == "test-cluster" && input.OCPVersion == "4.16"
		})).Return(record, nil)
		clusterHandler := NewHandler(testCatalog(t), service)

		c, recorder := newTestContext(t, http.MethodPost, standardRequestBody())
		clusterHandler.Generate(c)

		require.Empty(t, c.Errors)
		require.Equal(t, http.StatusCreated, recorder.Code)
		var response GenerateClusterResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, uint(1), response.ID)
		assert.Equal(t, "clusters/dc-1/test-cluster.yaml", response.Path)
		assert.Equal(t, []string{"dell"}, response.VendorsUsed)
		service.AssertExpectations(t)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		service := &mockGenerationService{}
		service.On("Generate", mock.Anything, mock.Anything).
			Return(model.Cluster{}, errdef.NewDuplicated("cluster named test-cluster already exists"))
		clusterHandler := NewHandler(testCatalog(t), service)

		c, _ := newTestContext(t, http.MethodPost, standardRequestBody())
		clusterHandler.Generate(c)

		require.Len(t, c.Errors, 1)
		assert.True(t, errdef.IsDuplicated(c.Errors[0].Err))
	})
}

func TestHandlerFind(t *testing.T) {
	service := &mockGenerationService{}
	record := model.Cluster{Name: "test-cluster"}
	record.ID = 7
	service.On("Find", mock.Anything, uint(7)).Return(record, nil)
	clusterHandler := NewHandler(testCatalog(t), service)

	c, recorder := newTestContext(t, http.MethodGet, nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	clusterHandler.Find(c)

	require.Empty(t, c.Errors)
	require.Equal(t, http.StatusOK, recorder.Code)
	var response model.Cluster
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, uint(7), response.ID)
	service.AssertExpectations(t)
}

func TestHandlerDescriptor(t *testing.T) {
	service := &mockGenerationService{}
	record := model.Cluster{Configuration: []byte("clusterName: test-cluster\n")}
	record.ID = 7
	service.On("Find", mock.Anything, uint(7)).Return(record, nil)
	clusterHandler := NewHandler(testCatalog(t), service)

	c, recorder := newTestContext(t, http.MethodGet, nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	clusterHandler.Descriptor(c)

	require.Empty(t, c.Errors)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/yaml", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "clusterName: test-cluster\n", recorder.Body.String())
}

func TestHandlerDelete(t *testing.T) {
	service := &mockGenerationService{}
	service.On("Delete", mock.Anything, uint(7)).Return(nil)
	clusterHandler := NewHandler(testCatalog(t), service)

	c, recorder := newTestContext(t, http.MethodDelete, nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	clusterHandler.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	service.AssertExpectations(t)
}

func TestHandlerDefaults(t *testing.T) {
	clusterHandler := NewHandler(testCatalog(t), &mockGenerationService{})

	c, recorder := newTestContext(t, http.MethodGet, nil)
	clusterHandler.Defaults(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response DefaultsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, []Vendor{
		{Name: "dell", DisplayName: "Dell PowerEdge"},
		{Name: "cisco", DisplayName: "Cisco UCS"},
	}, response.Vendors)
	assert.Equal(t, []VersionInfo{
		{Version: "4.15", IsDefault: false},
		{Version: "4.16", IsDefault: true},
	}, response.Versions)
	assert.Equal(t, []string{ConfigWorkersChrony, ConfigKubelet}, response.DefaultConfigs)
	require.Len(t, response.OptionalConfigs, 2)
	assert.Equal(t, ConfigVarLibContainers, response.OptionalConfigs[0].Name)
	assert.Equal(t, ConfigRingsize, response.OptionalConfigs[1].Name)
	assert.Equal(t, "test.example.com", response.DefaultDNSDomain)
}
