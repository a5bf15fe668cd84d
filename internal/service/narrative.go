package service

// Static narrative blocks shown with each report section. The wording tracks
// the published analysis of the MLSE SPL free-throw dataset (one participant,
// 125 trials).

const narrativeIntro = `Follow-through is the part of shooting mechanics where the ball is released and the shooting hand extends toward the basket. This analysis examines its impact using data from the MLSE SPL Open Data Repository: one participant, 125 free-throw trials. Does follow-through really matter? Is it consistent across trials? Can it tell us something about the participant's form?`

const narrativeTimeseries = `The right wrist movement in the z direction traces the wind-up, release and follow-through of a single trial. The annotated points mark where each phase begins and ends.`

const narrativeGroupMeans = `The wind-up duration and release height indicate the participant is consistent in these categories. The follow-through duration is longer on average for missed baskets; made buckets may have a quicker release contributing to their success.`

const narrativeWristStability = `Comparing R_WRIST_z against time reveals differences in the smoothness of wrist movement from release to the end of the follow-through. To quantify this, the rate of change between consecutive points is computed and its standard deviation taken: a higher value reflects less consistent wrist movement. The interquartile range for missed shots is larger than for made, implying greater inconsistency on misses. Because the data is non-parametric, a Mann-Whitney U test compares the two groups; the p value falls below 0.05, so the groups appear statistically different, but the effect size is small, so the practical difference is modest. Wrist stability is greater for made shots.`

const narrativeSymmetry = `For the parts of the body not directly involved in the follow-through, the absolute difference between the right and left hip, ankle, eye and ear in the x direction serves as a symmetry proxy. Density plots with kernel density estimation suit the non-parametric data. Across the board (except the eyes), made baskets do not exceed missed baskets in asymmetry, suggesting body symmetry matters when shooting. The hip peak for made shots sits slightly right of missed, hinting the participant shoots on a slight angle, perhaps for power; eye symmetry follows the same trend.`

const narrativePinky = `Finger positioning characterizes a shooter's follow-through (gooseneck, flat, and so on). The offset between the wrist and the pinky base at their closest approach in z during the follow-through shows made baskets tend to have a larger absolute offset than missed ones. Most trials cluster around -0.15, so the finger position is consistent and reproducible across attempts.`

const narrativeMotion = `Some players release free throws with a straight upward motion, others with a slight forward movement. For this participant there is less forward wrist motion during successful shots, while missed baskets vary more. Foot distance shows no significant variance between made and missed baskets, so a wider stance does not appear to drive outcomes here.`

const narrativeConclusion = `Wrist stability was greater for made shots, with more variability in missed ones, so consistency in wrist movement matters. Body symmetry, particularly hips and eyes, also plays a role. Finger positioning was stable across trials with a slightly larger offset on made shots, and there was less forward motion on made baskets. Foot positioning showed no significant impact.`
