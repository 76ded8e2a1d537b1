package diet

// Western returns the default western-diet medium used by the ATP
// screen: average-european dietary fluxes mapped to exchange reactions.
func Western() Diet {
	return Diet{
		Name: "western",
		Uptake: map[string]float64{
			// sugars
			"EX_fru(e)":    0.14899,
			"EX_glc_D(e)":  0.14899,
			"EX_gal(e)":    0.14899,
			"EX_man(e)":    0.14899,
			"EX_mnl(e)":    0.14899,
			"EX_fuc_L(e)":  0.14899,
			"EX_glcn(e)":   0.14899,
			"EX_rmn(e)":    0.14899,
			"EX_arab_L(e)": 0.17878,
			"EX_drib(e)":   0.17878,
			"EX_rib_D(e)":  0.17878,
			"EX_xyl_D(e)":  0.17878,
			"EX_oxa(e)":    0.44696,
			"EX_lcts(e)":   0.074493,
			"EX_malt(e)":   0.074493,
			"EX_sucr(e)":   0.074493,
			"EX_melib(e)":  0.074493,
			"EX_cellb(e)":  0.074493,
			"EX_strch1(e)": 0.25734,
			// fibers
			"EX_amylopect900(e)": 1.5673e-05,
			"EX_amylose300(e)":   4.7019e-05,
			"EX_cellul(e)":       2.8211e-05,
			"EX_pect(e)":         3.3387e-05,
			"EX_inulin(e)":       0.00047019,
			"EX_levan1000(e)":    1.4106e-05,
			// fats
			"EX_arachd(e)":   0.003328,
			"EX_chsterol(e)": 0.004958,
			"EX_glyc(e)":     1.7997,
			"EX_hdca(e)":     0.39637,
			"EX_hdcea(e)":    0.036517,
			"EX_lnlc(e)":     0.35911,
			"EX_lnlnca(e)":   0.017565,
			"EX_ocdca(e)":    0.16928,
			"EX_ocdcea(e)":   0.68144,
			"EX_octa(e)":     0.012943,
			"EX_ttdca(e)":    0.068676,
			// amino acids
			"EX_ala_L(e)": 1.,
			"EX_arg_L(e)": 0.15,
			"EX_asn_L(e)": 0.225,
			"EX_asp_L(e)": 0.225,
			"EX_cys_L(e)": 0.16,
			"EX_gln_L(e)": 0.18,
			"EX_glu_L(e)": 0.18,
			"EX_gly(e)":   0.45,
			"EX_his_L(e)": 0.15,
			"EX_ile_L(e)": 0.15,
			"EX_leu_L(e)": 0.15,
			"EX_lys_L(e)": 0.15,
			"EX_met_L(e)": 0.18,
			"EX_phe_L(e)": 1.,
			"EX_pro_L(e)": 0.18,
			"EX_ser_L(e)": 0.18,
			"EX_thr_L(e)": 0.225,
			"EX_trp_L(e)": 0.08182,
			"EX_tyr_L(e)": 0.18,
			"EX_val_L(e)": 0.18,
			// minerals and vitamins
			"EX_ca2(e)":     1.,
			"EX_cl(e)":      1.,
			"EX_cobalt2(e)": 1.,
			"EX_cu2(e)":     1.,
			"EX_fe2(e)":     1.,
			"EX_fe3(e)":     1.,
			"EX_k(e)":       1.,
			"EX_mg2(e)":     1.,
			"EX_mn2(e)":     1.,
			"EX_mobd(e)":    1.,
			"EX_na1(e)":     1.,
			"EX_nh4(e)":     1.,
			"EX_pi(e)":      1.,
			"EX_so4(e)":     1.,
			"EX_zn2(e)":     1.,
			"EX_h2o(e)":     10.,
			"EX_h(e)":       10.,
			"EX_btn(e)":     1.,
			"EX_fol(e)":     1.,
			"EX_ncam(e)":    1.,
			"EX_pnto_R(e)":  1.,
			"EX_pydx(e)":    1.,
			"EX_ribflv(e)":  1.,
			"EX_thm(e)":     1.,
		},
	}
}
