package simulations

// DefaultMeshParameters returns the values a blank form starts from
func DefaultMeshParameters(meshType MeshType) MeshParameters {
	params := MeshParameters{
		Type:            meshType,
		NChunks:         1,
		NexXi:           64,
		NexEta:          64,
		NProcXi:         1,
		NProcEta:        1,
		AngularWidthXi:  90,
		AngularWidthEta: 90,
	}
	if meshType == MeshTypeRegional {
		params.AngularWidthXi = 20
		params.AngularWidthEta = 20
	}
	return params
}

// DefaultModelParameters returns the values a blank form starts from
func DefaultModelParameters() ModelParameters {
	return ModelParameters{
		Type:        ModelIsotropicPREM,
		Oceans:      true,
		Gravity:     true,
		Attenuation: true,
		Topography:  true,
		Rotation:    true,
		Ellipticity: true,
	}
}

// DefaultSimulationParameters returns the values a blank form starts from
func DefaultSimulationParameters(simulationType SimulationType) SimulationParameters {
	return SimulationParameters{
		SimulationType:             simulationType,
		RecordLength:               15,
		NTStepBetweenFrames:        100,
		OutputFormat:               OutputFormatASCII,
		NTStepBetweenOutputSeismos: 5000,
	}
}
