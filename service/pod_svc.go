package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

const multiSelectHeader = "TAB/SHIFT-TAB for multiple selections"

// ChoosePods lets the operator pick one or more running pods by short name and returns
// their qualified names in the order they were picked.
func (svc *Service) ChoosePods(ctx context.Context, podPrefix string) (*domain.TargetSelector, error) {
	pods, err := svc.ClusterAdapter.ListPods(ctx)
	if err != nil {
		return nil, err
	}

	shortToQualified := make(map[string]string, len(pods))
	options := make([]string, 0, len(pods))
	for _, pod := range pods {
		if _, dup := shortToQualified[pod.ShortName]; dup {
			continue
		}
		shortToQualified[pod.ShortName] = pod.QualifiedName
		options = append(options, pod.ShortName)
	}
	if len(options) == 0 {
		return nil, errors.Wrap(domain.ErrPodNotFound, "no running pods in namespace")
	}

	choices, err := svc.Selector.Select(ctx, options, domain.SelectOptions{
		Query:  podPrefix,
		Multi:  true,
		Header: multiSelectHeader,
	})
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, domain.ErrSelectionAborted
	}

	selector := &domain.TargetSelector{QualifiedNames: make([]string, 0, len(choices))}
	for _, choice := range choices {
		qualified, ok := shortToQualified[choice]
		if !ok {
			return nil, errors.Wrapf(domain.ErrUnknownSelection, "pod %q", choice)
		}
		selector.QualifiedNames = append(selector.QualifiedNames, qualified)
	}
	logger.Logger(ctx).Debug().Strs("pods", selector.QualifiedNames).Msg("pods selected")
	return selector, nil
}

// ResolveContainer picks the container of pod that receives the code. An explicit
// name wins; otherwise exactly one container must expose the web port.
func (svc *Service) ResolveContainer(pod *domain.CandidatePod, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	var candidates []string
	for _, c := range pod.Containers {
		if c.HasPort(domain.WebPortName) {
			candidates = append(candidates, c.Name)
		}
	}
	if len(candidates) != 1 {
		return "", errs.NewValidationError(domain.ErrAmbiguousContainer, candidates,
			"pod %s needs exactly one container with a %q port, use --container to choose", pod.ShortName, domain.WebPortName)
	}
	return candidates[0], nil
}
