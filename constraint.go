package dragonbones

// decodeIk 只记录名字，bone 与 target 是否存在交给使用方检查
func decodeIk(o object) (*Ik, error) {
	res := &Ik{}
	var err error
	if res.Bone, err = o.requireStr("bone"); err != nil {
		return nil, err
	}
	if res.Target, err = o.requireStr("target"); err != nil {
		return nil, err
	}
	if res.Name, err = o.str("name", ""); err != nil {
		return nil, err
	}
	if res.BendPositive, err = o.boolean("bendPositive", DefaultBendPositive); err != nil {
		return nil, err
	}
	if res.Chain, err = o.count("chain", DefaultChain); err != nil {
		return nil, err
	}
	if res.Weight, err = o.number("weight", DefaultIkWeight); err != nil {
		return nil, err
	}
	return res, nil
}
