package kubernetes

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	apiv1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

const (
	qualifiedPrefix         = "pod/"
	serviceAccountNamespace = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
	defaultPodCacheTTL      = 5 * time.Minute
)

type K8sAdapter interface {
	domain.ClusterAdapter
	GetClient() kubernetes.Interface
	Namespace() string
}

type k8sClient struct {
	kubeClient kubernetes.Interface
	namespace  string
	podCache   *cache.Cache[string, *domain.CandidatePod]
	cacheTTL   time.Duration
}

// Verify lists at most one pod to prove the credentials work against the namespace.
func (k *k8sClient) Verify(ctx context.Context) error {
	_, err := k.kubeClient.CoreV1().Pods(k.namespace).List(ctx, metav1.ListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClusterUnreachable, err)
	}
	return nil
}

// ListPods returns the running pods of the namespace and caches each by qualified name.
func (k *k8sClient) ListPods(ctx context.Context) ([]*domain.CandidatePod, error) {
	pods, err := k.kubeClient.CoreV1().Pods(k.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods in namespace %s: %w", k.namespace, err)
	}

	candidates := make([]*domain.CandidatePod, 0, len(pods.Items))
	for i := range pods.Items {
		pod := &pods.Items[i]
		if pod.Status.Phase != apiv1.PodRunning {
			logger.Logger(ctx).Debug().Msgf("skipping pod %s in phase %s", pod.Name, pod.Status.Phase)
			continue
		}
		candidate := toCandidatePod(pod)
		k.podCache.Set(candidate.QualifiedName, candidate, cache.WithExpiration(k.cacheTTL))
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// GetPod serves the pod from the cache filled by ListPods, falling back to the API.
func (k *k8sClient) GetPod(ctx context.Context, qualifiedName string) (*domain.CandidatePod, error) {
	if pod, ok := k.podCache.Get(qualifiedName); ok {
		return pod, nil
	}

	name := strings.TrimPrefix(qualifiedName, qualifiedPrefix)
	pod, err := k.kubeClient.CoreV1().Pods(k.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPodNotFound, qualifiedName)
		}
		return nil, fmt.Errorf("get pod %s: %w", qualifiedName, err)
	}
	candidate := toCandidatePod(pod)
	k.podCache.Set(candidate.QualifiedName, candidate, cache.WithExpiration(k.cacheTTL))
	return candidate, nil
}

func (k *k8sClient) GetClient() kubernetes.Interface {
	return k.kubeClient
}

func (k *k8sClient) Namespace() string {
	return k.namespace
}

// QualifiedName returns the kind-qualified name used to address a pod.
func QualifiedName(podName string) string {
	return qualifiedPrefix + podName
}

func toCandidatePod(pod *apiv1.Pod) *domain.CandidatePod {
	candidate := &domain.CandidatePod{
		ShortName:     pod.Name,
		QualifiedName: QualifiedName(pod.Name),
		Namespace:     pod.Namespace,
		Containers:    make([]domain.Container, 0, len(pod.Spec.Containers)),
	}
	for _, c := range pod.Spec.Containers {
		container := domain.Container{Name: c.Name}
		for _, p := range c.Ports {
			if p.Name != "" {
				container.Ports = append(container.Ports, p.Name)
			}
		}
		candidate.Containers = append(candidate.Containers, container)
	}
	return candidate
}

// Options contains Kubernetes adapter options
type Options struct {
	KubeConfigPath string
	Context        string
	Namespace      string
	InCluster      bool
	Token          config.SecretValue
	CacheTTL       time.Duration
}

// NewK8SAdapter creates a new Kubernetes adapter based on command line options.
// Supports two modes:
// 1. When running inside the cluster, use in-cluster configuration
// 2. Otherwise use the kubeconfig loading rules (explicit path, $KUBECONFIG, ~/.kube/config)
// A token, when given, replaces whatever credentials the kubeconfig carries.
// Every construction failure wraps domain.ErrClusterUnreachable.
func NewK8SAdapter(options Options) (K8sAdapter, error) {
	var restCfg *rest.Config
	var err error
	namespace := options.Namespace

	if options.InCluster {
		restCfg, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("%w: in-cluster config: %v", domain.ErrClusterUnreachable, err)
		}
		if namespace == "" {
			if data, err := os.ReadFile(serviceAccountNamespace); err == nil {
				namespace = strings.TrimSpace(string(data))
			}
		}
	} else {
		rules := clientcmd.NewDefaultClientConfigLoadingRules()
		if options.KubeConfigPath != "" {
			rules.ExplicitPath = options.KubeConfigPath
		}
		overrides := &clientcmd.ConfigOverrides{CurrentContext: options.Context}
		clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides)
		restCfg, err = clientConfig.ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %v", domain.ErrClusterUnreachable, domain.ErrNoKubeConfig, err)
		}
		if namespace == "" {
			namespace, _, err = clientConfig.Namespace()
			if err != nil {
				return nil, fmt.Errorf("%w: resolve namespace: %w", domain.ErrClusterUnreachable, err)
			}
		}
	}

	if !options.Token.IsZero() {
		restCfg.BearerToken = options.Token.Value()
		restCfg.BearerTokenFile = ""
		restCfg.Username = ""
		restCfg.Password = ""
		restCfg.AuthProvider = nil
		restCfg.ExecProvider = nil
	}

	restCfg.Timeout = 10 * time.Second
	restCfg.QPS = 20
	restCfg.Burst = 50

	kubeClient, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %w", domain.ErrClusterUnreachable, err)
	}

	return NewK8SAdapterWithClient(kubeClient, namespace, options.CacheTTL), nil
}

// NewK8SAdapterWithClient wraps an existing clientset.
func NewK8SAdapterWithClient(client kubernetes.Interface, namespace string, cacheTTL time.Duration) K8sAdapter {
	if cacheTTL <= 0 {
		cacheTTL = defaultPodCacheTTL
	}
	return &k8sClient{
		kubeClient: client,
		namespace:  namespace,
		podCache:   cache.New[string, *domain.CandidatePod](),
		cacheTTL:   cacheTTL,
	}
}
