// Package cluster generates MCE cluster descriptors.
//
// A compact generation request (cluster name, site, vendor node pools, OCP
// version and a few feature flags) is expanded into a complete descriptor
// document: per-pool machine config references, the cluster-wide mcFiles
// aggregate and the image content sources of the requested OCP version.
//
// The package follows a layered architecture with:
// - Handler: HTTP request/response handling
// - Service: descriptor assembly and generation records
// - Repository: data access layer
//
// swagger:meta
package cluster

import "github.com/mce-sre/cluster-generator/pkg/model"

// swagger:response ClusterResponse
// A generated cluster record
type clusterResponse struct {
	// The cluster record
	// in: body
	Body model.Cluster
}

// swagger:response ClustersResponse
// A list of generated cluster records
type clustersResponse struct {
	// The cluster records
	// in: body
	Body []model.Cluster
}

// swagger:response DescriptorResponse
// The rendered descriptor YAML
type descriptorResponse struct {
	// in: body
	Body []byte
}

// swagger:parameters generateCluster previewCluster
type generateClusterParams struct {
	// The generation request
	// in: body
	// required: true
	Body GenerateClusterRequest
}

// swagger:parameters findClusterById clusterDescriptor deleteCluster
type clusterIDParams struct {
	// The cluster record ID
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:response VendorsResponse
// The supported hardware vendors
type vendorsResponse struct {
	// in: body
	Body []Vendor
}

// swagger:response VersionsResponse
// The supported OCP versions
type versionsResponse struct {
	// in: body
	Body []string
}
