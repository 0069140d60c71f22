// Package model contains the domain models shared across the cluster
// generator. ClusterDescriptor and its nested types mirror the structure of
// the descriptor YAML consumed by the MCE GitOps tooling; field order matters
// as it determines the key order of the rendered document.
package model

// ClusterDescriptor is the complete configuration document produced for one
// generation request. It is immutable once assembled.
type ClusterDescriptor struct {
	ClusterName         string               `json:"clusterName" yaml:"clusterName"`
	Platform            string               `json:"platform" yaml:"platform"`
	HostInventory       string               `json:"hostInventory" yaml:"hostInventory"`
	NodePools           []NodePool           `json:"nodepool" yaml:"nodepool"`
	MCFiles             []string             `json:"mcFiles" yaml:"mcFiles"`
	DNS                 DNSConfig            `json:"dns" yaml:"dns"`
	ImageContentSources []ImageContentSource `json:"imageContentSources" yaml:"imageContentSources"`
}

// NodePool describes the worker pool generated for one vendor request.
type NodePool struct {
	Name               string             `json:"name" yaml:"name"`
	Replicas           int                `json:"replicas" yaml:"replicas"`
	Labels             NodePoolLabels     `json:"labels" yaml:"labels"`
	AgentLabelSelector AgentLabelSelector `json:"agentLabelSelector" yaml:"agentLabelSelector"`
	Config             []ConfigItem       `json:"config" yaml:"config"`
}

type NodePoolLabels struct {
	AllowDeletion bool   `json:"allowDeletion" yaml:"allowDeletion"`
	MinReplicas   string `json:"minReplicas" yaml:"minReplicas"`
	MaxReplicas   string `json:"maxReplicas" yaml:"maxReplicas"`
}

// AgentLabelSelector ties a node pool to the agents of an infrastructure
// environment.
type AgentLabelSelector struct {
	NodeLabelKey   string `json:"nodeLabelKey" yaml:"nodeLabelKey"`
	NodeLabelValue string `json:"nodeLabelValue" yaml:"nodeLabelValue"`
}

// ConfigItem is a reference to a machine config by name.
type ConfigItem struct {
	Name string `json:"name" yaml:"name"`
}

type DNSConfig struct {
	Site string `json:"site" yaml:"site"`
	Zone string `json:"zone" yaml:"zone"`
}

// ImageContentSource maps an upstream registry source to one or more local
// mirrors. Pull specs matching Source are served from Mirrors instead.
type ImageContentSource struct {
	Source  string   `json:"source" yaml:"source"`
	Mirrors []string `json:"mirrors" yaml:"mirrors"`
}
